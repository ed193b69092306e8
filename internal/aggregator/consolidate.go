package aggregator

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/analyzer"
	"github.com/nguyentantai21042004/lecture-flow/internal/layout"
	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
)

const consolidateSystem = "You are an expert academic assistant that helps organize and structure lecture content in a clear, comprehensive manner using markdown formatting."

const consolidatePrompt = `The following contains important content extracted from multiple pages of lecture material titled "%s".
Please consolidate this into a well-structured, comprehensive document that:

1. Organizes information by topic rather than by page
2. Eliminates redundancy while preserving all important points
3. Presents information in a logical, hierarchical structure
4. Uses markdown formatting for better readability (headings, lists, etc.)
5. Highlights key concepts, formulas, and exam-relevant information

Content:
%s`

func (a *implAggregator) ConsolidateDocument(ctx context.Context, name string) (*Consolidated, error) {
	sources, err := a.gatherDocument(name)
	if err != nil {
		return nil, err
	}

	// A single important_content.txt is passed through without a header.
	var body string
	if len(sources) == 1 && sources[0].label == layout.ImportantFile {
		body = sources[0].text
	} else {
		body = concatenate(sources)
	}

	a.logger.Info(ctx, "Consolidating document %s from %d source(s)", name, len(sources))
	return a.consolidate(ctx, name, sources, body)
}

func (a *implAggregator) ConsolidateLecture(ctx context.Context, lecture string) (*Consolidated, error) {
	dirs, err := a.lectureDirs(lecture)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("%w: no directories found for lecture %s", ErrNotFound, lecture)
	}

	sources, err := a.gatherLecture(dirs)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no important content found for lecture %s", ErrNotFound, lecture)
	}

	a.logger.Info(ctx, "Consolidating lecture %s from %d page(s)", lecture, len(sources))
	return a.consolidate(ctx, lecture, sources, concatenate(sources))
}

// concatenate joins sources, each under a "--- From <label> ---" header.
func concatenate(sources []source) string {
	blocks := make([]string, 0, len(sources))
	for _, s := range sources {
		blocks = append(blocks, fmt.Sprintf("--- From %s ---\n%s", s.label, s.text))
	}
	return strings.Join(blocks, "\n\n")
}

func (a *implAggregator) consolidate(ctx context.Context, title string, sources []source, body string) (*Consolidated, error) {
	content, err := a.client.Generate(ctx, llm.Request{
		System: consolidateSystem,
		Prompt: fmt.Sprintf(consolidatePrompt, title, analyzer.Truncate(body, a.maxChars)),
	})
	if err != nil {
		return nil, fmt.Errorf("consolidate %s: %w", title, err)
	}

	path := a.layout.ConsolidatedPath(title)
	doc := fmt.Sprintf("# %s - Important Content\n\n%s", title, content)
	if err := layout.WriteText(path, doc); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(sources))
	for _, s := range sources {
		labels = append(labels, s.label)
	}

	a.logger.Info(ctx, "Consolidated %s -> %s", title, path)
	return &Consolidated{
		Title:   title,
		Sources: labels,
		Path:    path,
		Body:    content,
	}, nil
}
