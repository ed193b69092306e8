package transcriber

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/pkg/executor"
)

const requestTimeout = 10 * time.Minute

type implWhisper struct {
	cfg      config.WhisperConfig
	ffmpeg   string
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

type implOpenAI struct {
	cfg        config.OpenAIConfig
	httpClient *http.Client
	logger     logger.Logger
}

// New returns the Transcriber selected by cfg.Transcriber.Backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Backend {
	case config.BackendWhisper, "":
		return &implWhisper{
			cfg:      cfg.Transcriber.Whisper,
			ffmpeg:   cfg.FFmpeg.BinaryPath,
			tempDir:  cfg.Paths.Temp,
			executor: exec,
			logger:   log,
		}, nil
	case config.BackendOpenAI:
		return &implOpenAI{
			cfg:        cfg.Transcriber.OpenAI,
			httpClient: &http.Client{Timeout: requestTimeout},
			logger:     log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown transcriber backend: %s", cfg.Transcriber.Backend)
	}
}
