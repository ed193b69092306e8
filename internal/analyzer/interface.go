// Package analyzer turns transcripts, documents and slide images into
// "important content", summaries and per-page analyses via the LLM.
package analyzer

import "context"

// Kind selects the prompt set used for a piece of text.
type Kind int

const (
	// KindTranscript is a lecture audio transcript.
	KindTranscript Kind = iota
	// KindDocument is PDF text combined with per-page analyses.
	KindDocument
	// KindImage is the analysis of a single slide image.
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindTranscript:
		return "transcript"
	case KindDocument:
		return "document"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// TextAnalyzer extracts important content and summaries. Input longer than
// the configured budget is truncated before submission.
type TextAnalyzer interface {
	ExtractImportantContent(ctx context.Context, kind Kind, text string) (string, error)
	Summarize(ctx context.Context, kind Kind, text string) (string, error)
}

// PageAnalyzer analyses one rendered page or slide image.
type PageAnalyzer interface {
	Analyze(ctx context.Context, imagePath string) PageResult
}

// PageResult is either an analysis text or the reason the page failed.
type PageResult struct {
	Text string
	Err  error
}

// OK reports whether the page was analysed successfully.
func (r PageResult) OK() bool {
	return r.Err == nil
}
