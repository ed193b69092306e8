package pipeline

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/aggregator"
	"github.com/nguyentantai21042004/lecture-flow/internal/docx"
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"github.com/nguyentantai21042004/lecture-flow/internal/processor"
)

type implPipeline struct {
	inputDir   string
	layout     *layout.Layout
	processor  processor.Processor
	aggregator aggregator.Aggregator
	exporter   docx.Exporter
	logger     logger.Logger
}

// New creates a Pipeline reading inputDir. exporter may be nil to skip docx
// export of consolidated documents.
func New(inputDir string, out *layout.Layout, proc processor.Processor, agg aggregator.Aggregator, exporter docx.Exporter, log logger.Logger) Pipeline {
	return &implPipeline{
		inputDir:   inputDir,
		layout:     out,
		processor:  proc,
		aggregator: agg,
		exporter:   exporter,
		logger:     log,
	}
}
