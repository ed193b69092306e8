// Package pipeline drives a batch: the per-unit pass over the input
// directory followed by the aggregation pass over the output tree.
package pipeline

import (
	"context"
	"fmt"
)

// Mode selects which passes a run performs.
type Mode string

const (
	ModeAudio       Mode = "audio"
	ModeDocuments   Mode = "documents"
	ModeAll         Mode = "all"
	ModeWatch       Mode = "watch"
	ModeConsolidate Mode = "consolidate"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAudio, ModeDocuments, ModeAll, ModeWatch, ModeConsolidate:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want audio, documents, all, watch or consolidate)", s)
	}
}

// Report counts what a run produced. Failed counts units and groups that
// returned an error.
type Report struct {
	Audio        int
	PDF          int
	Image        int
	Consolidated int
	Failed       int
}

func (r *Report) add(o Report) {
	r.Audio += o.Audio
	r.PDF += o.PDF
	r.Image += o.Image
	r.Consolidated += o.Consolidated
	r.Failed += o.Failed
}

// Pipeline runs batches and single arrivals.
type Pipeline interface {
	// Run performs one batch in the given mode. ModeWatch runs the same
	// batch as ModeAll; following new arrivals is the caller's concern.
	Run(ctx context.Context, mode Mode) (Report, error)
	// HandleFile processes one input file and then re-runs aggregation.
	HandleFile(ctx context.Context, path string) (Report, error)
}
