package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
)

// Process classifies path and runs the matching pipeline.
func (p *implProcessor) Process(ctx context.Context, path string) (Result, error) {
	kind, err := Classify(path)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing %s: %s", kind, filepath.Base(path))
	p.logger.Info(ctx, "========================================")

	var res Result
	switch kind {
	case KindAudio:
		res, err = p.processAudio(ctx, path)
	case KindPDF:
		res, err = p.processPDF(ctx, path)
	case KindImage:
		res, err = p.processImage(ctx, path)
	}
	res.Kind = kind
	res.Name = stem(path)

	if err != nil {
		return res, fmt.Errorf("process %s %s: %w", kind, filepath.Base(path), err)
	}

	p.logger.Info(ctx, "Processed %s in %s (%d outputs)", filepath.Base(path), time.Since(start).Round(time.Millisecond), len(res.Outputs))
	return res, nil
}

// writeText writes content to path and records it in res.
func writeText(res *Result, path, content string) error {
	if err := layout.WriteText(path, content); err != nil {
		return err
	}
	res.Outputs = append(res.Outputs, path)
	return nil
}

func writeJSON(res *Result, path string, v any) error {
	if err := layout.WriteJSON(path, v); err != nil {
		return err
	}
	res.Outputs = append(res.Outputs, path)
	return nil
}
