package docx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

func (e *implExporter) Markdown(title, markdown, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	e.run(doc.AddParagraph(""), stripInline(title), true, titleSize)

	for _, b := range parseMarkdown(markdown) {
		p := doc.AddParagraph("")
		switch b.kind {
		case blockHeading:
			e.run(p, stripInline(b.text), true, headingSize(b.level))
		case blockBullet:
			e.rich(p, "• "+b.text)
		default:
			e.rich(p, b.text)
		}
	}

	return e.save(doc, outputPath)
}

func (e *implExporter) Transcript(title, srt, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	e.run(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, line := range transcriptLines(srt) {
		e.run(doc.AddParagraph(""), line, false, e.size)
	}

	return e.save(doc, outputPath)
}

// saver is satisfied by the godocx root document.
type saver interface {
	SaveTo(fileName string) error
}

func (e *implExporter) save(doc saver, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(outputPath), err)
	}
	return nil
}

func (e *implExporter) run(p *docx.Paragraph, text string, bold bool, size uint64) {
	r := p.AddText(text).Font(e.font).Size(size).Color("000000")
	if bold {
		r.Bold(true)
	}
}

func (e *implExporter) rich(p *docx.Paragraph, text string) {
	for _, s := range inlineSpans(text) {
		e.run(p, s.text, s.bold, e.size)
	}
}
