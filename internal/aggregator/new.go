package aggregator

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implAggregator struct {
	layout   *layout.Layout
	client   llm.Client
	maxChars int
	logger   logger.Logger
}

// New creates an Aggregator reading and writing under out. maxChars bounds
// the concatenated input sent to the LLM.
func New(out *layout.Layout, client llm.Client, maxChars int, log logger.Logger) Aggregator {
	return &implAggregator{
		layout:   out,
		client:   client,
		maxChars: maxChars,
		logger:   log,
	}
}
