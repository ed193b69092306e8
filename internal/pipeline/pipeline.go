package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/aggregator"
	"github.com/nguyentantai21042004/lecture-flow/internal/processor"
)

func (p *implPipeline) Run(ctx context.Context, mode Mode) (Report, error) {
	var report Report

	if mode != ModeConsolidate {
		units, err := p.discover(ctx, mode)
		if err != nil {
			return report, err
		}
		p.logger.Info(ctx, "Found %d file(s) to process in %s", len(units), p.inputDir)

		for _, path := range units {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			report.add(p.processUnit(ctx, path))
		}
	}

	if mode != ModeAudio {
		agg, err := p.aggregate(ctx)
		report.add(agg)
		if err != nil {
			return report, err
		}
	}

	p.logReport(ctx, report)
	return report, nil
}

func (p *implPipeline) HandleFile(ctx context.Context, path string) (Report, error) {
	report := p.processUnit(ctx, path)

	kind, _ := processor.Classify(path)
	if kind == processor.KindPDF || kind == processor.KindImage {
		agg, err := p.aggregate(ctx)
		report.add(agg)
		if err != nil {
			return report, err
		}
	}

	p.logReport(ctx, report)
	return report, nil
}

// discover lists the input files for mode in name order. Directories,
// hidden files and unsupported extensions are skipped.
func (p *implPipeline) discover(ctx context.Context, mode Mode) ([]string, error) {
	entries, err := os.ReadDir(p.inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var units []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		kind, err := processor.Classify(e.Name())
		if err != nil {
			p.logger.Debug(ctx, "Ignoring %s: %v", e.Name(), err)
			continue
		}
		if !wants(mode, kind) {
			continue
		}
		units = append(units, filepath.Join(p.inputDir, e.Name()))
	}
	return units, nil
}

func wants(mode Mode, kind processor.Kind) bool {
	switch mode {
	case ModeAudio:
		return kind == processor.KindAudio
	case ModeDocuments:
		return kind == processor.KindPDF || kind == processor.KindImage
	default:
		return true
	}
}

// processUnit runs one file and absorbs its failure into the report.
func (p *implPipeline) processUnit(ctx context.Context, path string) Report {
	var report Report

	res, err := p.processor.Process(ctx, path)
	if err != nil {
		p.logger.Error(ctx, "Failed to process %s: %v", filepath.Base(path), err)
		report.Failed++
		return report
	}

	switch res.Kind {
	case processor.KindAudio:
		report.Audio++
	case processor.KindPDF:
		report.PDF++
	case processor.KindImage:
		report.Image++
	}
	return report
}

// aggregate consolidates every document and lecture group in the output
// tree. Groups without usable content are skipped with a warning.
func (p *implPipeline) aggregate(ctx context.Context) (Report, error) {
	var report Report

	groups, err := p.aggregator.Discover(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			p.logger.Warn(ctx, "Output directory %s does not exist, nothing to consolidate", p.layout.Root())
			return report, nil
		}
		return report, fmt.Errorf("discover groups: %w", err)
	}

	documents := make(map[string]bool, len(groups.Documents))
	for _, name := range groups.Documents {
		documents[name] = true
	}
	for _, lecture := range groups.Lectures {
		if documents[lecture] {
			p.logger.Warn(ctx, "Document and lecture both named %s: %s is overwritten by the lecture consolidation",
				lecture, filepath.Base(p.layout.ConsolidatedPath(lecture)))
		}
	}

	for _, name := range groups.Documents {
		report.add(p.consolidated(ctx, "document", name, func() (*aggregator.Consolidated, error) {
			return p.aggregator.ConsolidateDocument(ctx, name)
		}))
	}
	for _, lecture := range groups.Lectures {
		report.add(p.consolidated(ctx, "lecture", lecture, func() (*aggregator.Consolidated, error) {
			return p.aggregator.ConsolidateLecture(ctx, lecture)
		}))
	}
	return report, nil
}

func (p *implPipeline) consolidated(ctx context.Context, kind, name string, fn func() (*aggregator.Consolidated, error)) Report {
	var report Report

	doc, err := fn()
	switch {
	case errors.Is(err, aggregator.ErrNotFound):
		p.logger.Warn(ctx, "Nothing to consolidate for %s %s: %v", kind, name, err)
		return report
	case err != nil:
		p.logger.Error(ctx, "Failed to consolidate %s %s: %v", kind, name, err)
		report.Failed++
		return report
	}

	report.Consolidated++
	p.export(ctx, doc)
	return report
}

func (p *implPipeline) export(ctx context.Context, doc *aggregator.Consolidated) {
	if p.exporter == nil {
		return
	}
	path := p.layout.ConsolidatedDocxPath(doc.Title)
	title := doc.Title + " - Important Content"
	if err := p.exporter.Markdown(title, doc.Body, path); err != nil {
		p.logger.Warn(ctx, "Failed to export %s: %v", filepath.Base(path), err)
		return
	}
	p.logger.Info(ctx, "Exported %s", path)
}

func (p *implPipeline) logReport(ctx context.Context, r Report) {
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processed: %d audio, %d pdf, %d image", r.Audio, r.PDF, r.Image)
	p.logger.Info(ctx, "Consolidated: %d", r.Consolidated)
	if r.Failed > 0 {
		p.logger.Warn(ctx, "Failed: %d", r.Failed)
	}
	p.logger.Info(ctx, "========================================")
}
