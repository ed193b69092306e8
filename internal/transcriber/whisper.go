package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe normalises the audio with ffmpeg and runs whisper.cpp once,
// asking for both text and SRT outputs.
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) (Transcript, error) {
	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return Transcript{}, fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(w.tempDir, "transcribe-*")
	if err != nil {
		return Transcript{}, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	wavPath, err := w.extractAudio(ctx, audioPath, workDir)
	if err != nil {
		return Transcript{}, err
	}

	prefix, err := w.runWhisper(ctx, wavPath)
	if err != nil {
		return Transcript{}, err
	}

	text, err := os.ReadFile(prefix + ".txt")
	if err != nil {
		return Transcript{}, fmt.Errorf("read text transcript: %w", err)
	}
	srt, err := os.ReadFile(prefix + ".srt")
	if err != nil {
		return Transcript{}, fmt.Errorf("read srt transcript: %w", err)
	}

	return Transcript{
		Text: strings.TrimSpace(string(text)),
		SRT:  string(srt),
	}, nil
}

// extractAudio converts the input to 16kHz mono WAV, the format whisper.cpp expects.
func (w *implWhisper) extractAudio(ctx context.Context, audioPath, workDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	wavPath := filepath.Join(workDir, base+".wav")

	w.logger.Info(ctx, "Normalising audio: %s", audioPath)

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}

	if _, err := w.executor.Execute(ctx, w.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}
	return wavPath, nil
}

// runWhisper returns the output prefix; whisper.cpp appends .txt and .srt.
func (w *implWhisper) runWhisper(ctx context.Context, wavPath string) (string, error) {
	prefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, wavPath)

	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-osrt",
		"-t", strconv.Itoa(w.cfg.Threads),
		"--output-file", prefix,
	}
	// -l pins the language; whisper auto-detects otherwise.
	if w.cfg.Language != "" {
		args = append(args, "-l", w.cfg.Language)
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	w.logger.Info(ctx, "Transcription completed: %s", prefix)
	return prefix, nil
}
