package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-flow/internal/analyzer"
)

const (
	importantHeader = "# Important Lecture Content\n\n"
	summaryHeader   = "# Lecture Summary\n\n"
)

// processAudio writes the transcripts as soon as they exist, then the
// important content and summary.
func (p *implProcessor) processAudio(ctx context.Context, path string) (Result, error) {
	var res Result
	name := stem(path)
	files := p.layout.AudioFiles(name, p.now())

	p.logger.Info(ctx, "Transcribing %s", path)
	tr, err := p.transcriber.Transcribe(ctx, path)
	if err != nil {
		return res, fmt.Errorf("transcribe: %w", err)
	}

	if err := writeText(&res, files.Text, tr.Text); err != nil {
		return res, err
	}
	if err := writeText(&res, files.SRT, tr.SRT); err != nil {
		return res, err
	}
	p.logger.Info(ctx, "Transcript saved: %s", files.Text)

	if p.exporter != nil && tr.SRT != "" {
		if err := p.exporter.Transcript(name, tr.SRT, files.Docx); err != nil {
			p.logger.Warn(ctx, "Failed to export transcript docx for %s: %v", name, err)
		} else {
			res.Outputs = append(res.Outputs, files.Docx)
		}
	}

	important, err := p.text.ExtractImportantContent(ctx, analyzer.KindTranscript, tr.Text)
	if err != nil {
		return res, err
	}
	if err := writeText(&res, files.Important, importantHeader+important); err != nil {
		return res, err
	}

	summary, err := p.text.Summarize(ctx, analyzer.KindTranscript, tr.Text)
	if err != nil {
		return res, err
	}
	if err := writeText(&res, files.Summary, summaryHeader+summary); err != nil {
		return res, err
	}

	return res, nil
}
