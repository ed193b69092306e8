package transcriber

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned by the OpenAI backend when no key is configured.
var ErrMissingAPIKey = errors.New("transcriber: openai api key is not configured")

// Transcript is the speech-to-text output for one audio file.
type Transcript struct {
	Text string
	SRT  string
}

// Transcriber converts an audio file into plain text and SRT subtitles.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcript, error)
}
