package document

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/pkg/executor"
)

type implDocument struct {
	rasterizer string
	dpi        int
	tempDir    string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Document backed by ledongthuc/pdf for text and pdftoppm for
// rendering.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Document {
	return &implDocument{
		rasterizer: cfg.PDF.RasterizerPath,
		dpi:        cfg.PDF.DPI,
		tempDir:    cfg.Paths.Temp,
		executor:   exec,
		logger:     log,
	}
}
