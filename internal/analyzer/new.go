package analyzer

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implText struct {
	client   llm.Client
	maxChars int
	logger   logger.Logger
}

type implPage struct {
	client llm.Client
	logger logger.Logger
}

// NewText creates a TextAnalyzer. maxChars bounds the text sent per call;
// zero or negative disables truncation.
func NewText(client llm.Client, maxChars int, log logger.Logger) TextAnalyzer {
	return &implText{
		client:   client,
		maxChars: maxChars,
		logger:   log,
	}
}

// NewPage creates a PageAnalyzer.
func NewPage(client llm.Client, log logger.Logger) PageAnalyzer {
	return &implPage{
		client: client,
		logger: log,
	}
}
