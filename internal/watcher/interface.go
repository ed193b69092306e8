package watcher

import "context"

// Watcher follows an input directory for newly arriving files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one arrived file.
type EventHandler func(ctx context.Context, filePath string) error

// Filter reports whether a path should be handed to the EventHandler.
type Filter func(path string) bool
