package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

const defaultSettle = 500 * time.Millisecond

// New watches inputDir. Arrivals passing filter are handled one at a time,
// in arrival order, each after waiting settle for the writer to finish.
func New(inputDir string, handler EventHandler, filter Filter, settle time.Duration, log logger.Logger) (Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(inputDir); err != nil {
		w.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle <= 0 {
		settle = defaultSettle
	}

	return &implWatcher{
		inputDir: inputDir,
		handler:  handler,
		filter:   filter,
		settle:   settle,
		logger:   log,
		watcher:  w,
	}, nil
}
