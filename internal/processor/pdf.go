package processor

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/analyzer"
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
)

type pageAnalysis struct {
	page int
	text string
}

// processPDF extracts text, renders and analyses every page, writes the
// grouping records and finally the important content and summary of the
// whole document. A document that cannot be rendered is processed from its
// text alone.
func (p *implProcessor) processPDF(ctx context.Context, pdfPath string) (Result, error) {
	var res Result
	name := stem(pdfPath)
	dir := p.layout.PDFDir(name)

	text, err := p.document.ExtractText(pdfPath)
	if err != nil {
		p.logger.Warn(ctx, "Text extraction failed for %s, continuing with page images: %v", name, err)
		text = ""
	}
	if err := writeText(&res, filepath.Join(dir, layout.TextFile), text); err != nil {
		return res, err
	}

	images, err := p.document.Rasterize(ctx, pdfPath, p.layout.PDFImagesDir(name))
	if err != nil {
		p.logger.Warn(ctx, "Rendering failed for %s, continuing with extracted text only: %v", name, err)
		images = nil
	}
	res.Outputs = append(res.Outputs, images...)
	p.logger.Info(ctx, "Rendered %d page(s) of %s", len(images), name)

	manifest := layout.NewManifest(layout.PDFGroup(name), layout.KindPDF, filepath.Base(pdfPath))
	meta := layout.DocumentMetadata{
		FileName:  name,
		PageCount: len(images),
		HasText:   strings.TrimSpace(text) != "",
		Pages:     make([]layout.PageMetadata, 0, len(images)),
	}

	var analyses []pageAnalysis
	for i, img := range images {
		page := i + 1
		entry := layout.ManifestPage{Page: page, Image: path.Join(layout.ImagesDir, filepath.Base(img))}

		p.logger.Info(ctx, "Analyzing page %d/%d of %s", page, len(images), name)
		result := p.pages.Analyze(ctx, img)
		if result.OK() {
			if err := writeText(&res, p.layout.PageAnalysisPath(name, page), result.Text); err != nil {
				return res, err
			}
			entry.Analysis = path.Join(layout.AnalysisDir, layout.PageAnalysisName(page))
			analyses = append(analyses, pageAnalysis{page: page, text: result.Text})
		} else {
			p.logger.Warn(ctx, "Page %d of %s failed analysis and is excluded from aggregation: %v", page, name, result.Err)
			if err := layout.Remove(p.layout.PageAnalysisPath(name, page)); err != nil {
				return res, err
			}
			entry.Error = result.Err.Error()
		}

		manifest.Pages = append(manifest.Pages, entry)
		meta.Pages = append(meta.Pages, layout.PageMetadata{Page: page, HasAnalysis: result.OK()})
	}

	if err := writeJSON(&res, filepath.Join(dir, layout.MetadataFile), meta); err != nil {
		return res, err
	}
	if err := writeJSON(&res, filepath.Join(dir, layout.ManifestFile), manifest); err != nil {
		return res, err
	}

	combined := combineDocument(text, analyses)

	important, err := p.text.ExtractImportantContent(ctx, analyzer.KindDocument, combined)
	if err != nil {
		return res, err
	}
	if err := writeText(&res, filepath.Join(dir, layout.ImportantFile), important); err != nil {
		return res, err
	}

	summary, err := p.text.Summarize(ctx, analyzer.KindDocument, combined)
	if err != nil {
		return res, err
	}
	if err := writeText(&res, filepath.Join(dir, layout.SummaryFile), summary); err != nil {
		return res, err
	}

	return res, nil
}

// combineDocument appends each successful page analysis to the extracted
// text under a "--- Page n Analysis ---" header.
func combineDocument(text string, analyses []pageAnalysis) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n")
	for _, a := range analyses {
		fmt.Fprintf(&b, "--- Page %d Analysis ---\n%s\n\n", a.page, a.text)
	}
	return b.String()
}
