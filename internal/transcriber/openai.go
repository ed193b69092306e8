package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Transcribe uploads the file twice, once per response format.
func (o *implOpenAI) Transcribe(ctx context.Context, audioPath string) (Transcript, error) {
	if strings.TrimSpace(o.cfg.APIKey) == "" {
		return Transcript{}, ErrMissingAPIKey
	}

	o.logger.Info(ctx, "Uploading audio for transcription: %s", filepath.Base(audioPath))

	text, err := o.request(ctx, audioPath, "text")
	if err != nil {
		return Transcript{}, fmt.Errorf("text transcript: %w", err)
	}
	srt, err := o.request(ctx, audioPath, "srt")
	if err != nil {
		return Transcript{}, fmt.Errorf("srt transcript: %w", err)
	}

	return Transcript{Text: strings.TrimSpace(text), SRT: srt}, nil
}

func (o *implOpenAI) request(ctx context.Context, audioPath, format string) (string, error) {
	file, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy audio data: %w", err)
	}
	if err := writer.WriteField("model", o.cfg.Model); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := writer.WriteField("response_format", format); err != nil {
		return "", fmt.Errorf("write format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.Endpoint, body)
	if err != nil {
		return "", fmt.Errorf("create transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcription response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", decodeAPIError(resp.StatusCode, payload)
	}
	return string(payload), nil
}

func decodeAPIError(status int, body []byte) error {
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("openai api error: status %d type %s message %s", status, apiErr.Error.Type, apiErr.Error.Message)
	}
	return fmt.Errorf("openai api error: status %d body %s", status, string(body))
}
