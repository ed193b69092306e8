package processor

import (
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/analyzer"
	"github.com/nguyentantai21042004/lecture-flow/internal/document"
	"github.com/nguyentantai21042004/lecture-flow/internal/docx"
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/transcriber"
)

// Deps are the collaborators a Processor drives.
type Deps struct {
	Layout      *layout.Layout
	Transcriber transcriber.Transcriber
	Text        analyzer.TextAnalyzer
	Pages       analyzer.PageAnalyzer
	Document    document.Document
	// Exporter is optional; nil disables transcript docx export.
	Exporter docx.Exporter
	// Now defaults to time.Now.
	Now func() time.Time
}

type implProcessor struct {
	layout      *layout.Layout
	transcriber transcriber.Transcriber
	text        analyzer.TextAnalyzer
	pages       analyzer.PageAnalyzer
	document    document.Document
	exporter    docx.Exporter
	now         func() time.Time
	logger      logger.Logger
}

// New creates a Processor from its collaborators.
func New(deps Deps, log logger.Logger) Processor {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &implProcessor{
		layout:      deps.Layout,
		transcriber: deps.Transcriber,
		text:        deps.Text,
		pages:       deps.Pages,
		document:    deps.Document,
		exporter:    deps.Exporter,
		now:         now,
		logger:      log,
	}
}
