// Package aggregator stitches per-page outputs already on disk into one
// consolidated markdown document per document or lecture group.
package aggregator

import (
	"context"
	"errors"
)

// ErrNotFound means no usable source exists for a consolidation call.
var ErrNotFound = errors.New("no consolidation source found")

// Aggregator consolidates groups from a previously written output tree.
type Aggregator interface {
	// ConsolidateDocument consolidates pdf-<name>. It prefers the group's
	// important_content.txt and otherwise falls back to its per-page analyses.
	ConsolidateDocument(ctx context.Context, name string) (*Consolidated, error)
	// ConsolidateLecture consolidates every <lecture>-<n> group in ascending n.
	ConsolidateLecture(ctx context.Context, lecture string) (*Consolidated, error)
	// Discover lists the document and lecture groups present in the output tree.
	Discover(ctx context.Context) (Groups, error)
}

// Consolidated is one written <title>.md.
type Consolidated struct {
	Title   string
	Sources []string
	Path    string
	Body    string
}

// Groups found under the output root, each sorted by name.
type Groups struct {
	Documents []string
	Lectures  []string
}
