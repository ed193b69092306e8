// Package layout owns the output directory conventions. Every path the
// pipeline writes and the aggregator reads is built here.
package layout

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	PDFPrefix     = "pdf-"
	ImagesDir     = "images"
	AnalysisDir   = "analysis"
	TextFile      = "text_content.txt"
	AnalysisFile  = "analysis.txt"
	ImportantFile = "important_content.txt"
	SummaryFile   = "summary.txt"
	MetadataFile  = "metadata.json"
	ManifestFile  = "manifest.json"

	// TimestampLayout is YYYYMMDD_HHMMSS.
	TimestampLayout = "20060102_150405"
)

var (
	rePageAnalysis = regexp.MustCompile(`^page_(\d+)_analysis\.txt$`)
	reLecturePage  = regexp.MustCompile(`^(.+)-(\d+)$`)
)

// Layout resolves paths under one output root.
type Layout struct {
	root string
}

func New(root string) *Layout {
	return &Layout{root: root}
}

func (l *Layout) Root() string {
	return l.root
}

// PDFGroup is the directory name for a document: pdf-<name>.
func PDFGroup(name string) string {
	return PDFPrefix + name
}

func (l *Layout) PDFDir(name string) string {
	return filepath.Join(l.root, PDFGroup(name))
}

func (l *Layout) PDFImagesDir(name string) string {
	return filepath.Join(l.PDFDir(name), ImagesDir)
}

func (l *Layout) PageImagePath(name string, page int) string {
	return filepath.Join(l.PDFImagesDir(name), fmt.Sprintf("page_%d.png", page))
}

func (l *Layout) PDFAnalysisDir(name string) string {
	return filepath.Join(l.PDFDir(name), AnalysisDir)
}

func (l *Layout) PageAnalysisPath(name string, page int) string {
	return filepath.Join(l.PDFAnalysisDir(name), PageAnalysisName(page))
}

// GroupDir is any group directory directly under the root.
func (l *Layout) GroupDir(group string) string {
	return filepath.Join(l.root, group)
}

func (l *Layout) ConsolidatedPath(name string) string {
	return filepath.Join(l.root, name+".md")
}

func (l *Layout) ConsolidatedDocxPath(name string) string {
	return filepath.Join(l.root, name+".docx")
}

// AudioFiles are the flat per-audio outputs sharing one timestamp.
type AudioFiles struct {
	Text      string
	SRT       string
	Important string
	Summary   string
	Docx      string
}

func (l *Layout) AudioFiles(stem string, at time.Time) AudioFiles {
	base := filepath.Join(l.root, stem+"_"+at.Format(TimestampLayout))
	return AudioFiles{
		Text:      base + ".txt",
		SRT:       base + ".srt",
		Important: base + "_important.txt",
		Summary:   base + "_summary.txt",
		Docx:      base + "_transcript.docx",
	}
}

func PageAnalysisName(page int) string {
	return fmt.Sprintf("page_%d_analysis.txt", page)
}

// ParsePageAnalysisName extracts n from page_<n>_analysis.txt.
func ParsePageAnalysisName(name string) (int, bool) {
	m := rePageAnalysis.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseLecturePage splits <lecture>-<n>. Document groups never match.
func ParseLecturePage(name string) (string, int, bool) {
	if strings.HasPrefix(name, PDFPrefix) {
		return "", 0, false
	}
	m := reLecturePage.FindStringSubmatch(name)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}
