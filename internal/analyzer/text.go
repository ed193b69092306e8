package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
)

func (a *implText) ExtractImportantContent(ctx context.Context, kind Kind, text string) (string, error) {
	p, ok := prompts[kind]
	if !ok {
		return "", fmt.Errorf("no prompts for kind %s", kind)
	}

	a.logger.Info(ctx, "Extracting important content (%s)", kind)
	out, err := a.complete(ctx, p.importantSystem, p.importantUser, text)
	if err != nil {
		return "", fmt.Errorf("extract important content: %w", err)
	}
	return out, nil
}

func (a *implText) Summarize(ctx context.Context, kind Kind, text string) (string, error) {
	p, ok := prompts[kind]
	if !ok {
		return "", fmt.Errorf("no prompts for kind %s", kind)
	}

	a.logger.Info(ctx, "Summarizing (%s)", kind)
	out, err := a.complete(ctx, p.summarySystem, p.summaryUser, text)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return out, nil
}

func (a *implText) complete(ctx context.Context, system, template, text string) (string, error) {
	if len(text) > a.maxChars && a.maxChars > 0 {
		a.logger.Debug(ctx, "Truncating input to %d characters", a.maxChars)
	}
	out, err := a.client.Generate(ctx, llm.Request{
		System: system,
		Prompt: fmt.Sprintf(template, Truncate(text, a.maxChars)),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
