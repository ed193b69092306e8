package processor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/analyzer"
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
)

// processImage analyses a single slide into its own group directory. The
// metadata and manifest are written even when the analysis fails.
func (p *implProcessor) processImage(ctx context.Context, imagePath string) (Result, error) {
	var res Result
	name := stem(imagePath)
	dir := p.layout.GroupDir(name)

	manifest := layout.NewManifest(name, layout.KindImage, filepath.Base(imagePath))
	if lecture, idx, ok := layout.ParseLecturePage(name); ok {
		manifest.Lecture = lecture
		manifest.Index = idx
	}

	result := p.pages.Analyze(ctx, imagePath)
	entry := layout.ManifestPage{Page: 1}
	if result.OK() {
		if err := writeText(&res, filepath.Join(dir, layout.AnalysisFile), result.Text); err != nil {
			return res, err
		}
		entry.Analysis = layout.AnalysisFile
	} else {
		// Outputs of an earlier successful run no longer describe this slide.
		stale := []string{
			filepath.Join(dir, layout.AnalysisFile),
			filepath.Join(dir, layout.ImportantFile),
			filepath.Join(dir, layout.SummaryFile),
		}
		if err := layout.Remove(stale...); err != nil {
			return res, err
		}
		entry.Error = result.Err.Error()
	}
	manifest.Pages = append(manifest.Pages, entry)

	meta := layout.ImageMetadata{
		FileName:    name,
		FilePath:    imagePath,
		HasAnalysis: result.OK() && strings.TrimSpace(result.Text) != "",
	}
	if err := writeJSON(&res, filepath.Join(dir, layout.MetadataFile), meta); err != nil {
		return res, err
	}
	if err := writeJSON(&res, filepath.Join(dir, layout.ManifestFile), manifest); err != nil {
		return res, err
	}

	if !result.OK() {
		return res, result.Err
	}

	important, err := p.text.ExtractImportantContent(ctx, analyzer.KindImage, result.Text)
	if err != nil {
		return res, err
	}
	if err := writeText(&res, filepath.Join(dir, layout.ImportantFile), important); err != nil {
		return res, err
	}

	summary, err := p.text.Summarize(ctx, analyzer.KindImage, result.Text)
	if err != nil {
		return res, err
	}
	if err := writeText(&res, filepath.Join(dir, layout.SummaryFile), summary); err != nil {
		return res, err
	}

	return res, nil
}
