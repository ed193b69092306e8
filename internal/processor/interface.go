package processor

import (
	"context"
	"errors"
)

// ErrUnsupportedType is returned for files whose extension matches no kind.
var ErrUnsupportedType = errors.New("unsupported file type")

// Processor runs the per-unit pipeline for one input file.
type Processor interface {
	Process(ctx context.Context, path string) (Result, error)
}

// Result describes the files written for one unit. On failure it still lists
// whatever was written before the error.
type Result struct {
	Kind    Kind
	Name    string
	Outputs []string
}
