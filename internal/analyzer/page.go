package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-flow/internal/llm"
)

var imageMIMEs = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// Analyze never returns an error value directly; failures are carried in
// the result so sibling pages keep going.
func (a *implPage) Analyze(ctx context.Context, imagePath string) PageResult {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return PageResult{Err: fmt.Errorf("read image: %w", err)}
	}

	mime, ok := imageMIMEs[strings.ToLower(filepath.Ext(imagePath))]
	if !ok {
		mime = "image/png"
	}

	a.logger.Debug(ctx, "Analyzing image: %s", imagePath)
	out, err := a.client.Generate(ctx, llm.Request{
		Prompt: pageAnalysisPrompt,
		Images: []llm.Image{{Data: data, MIMEType: mime}},
	})
	if err != nil {
		return PageResult{Err: fmt.Errorf("analyze image: %w", err)}
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return PageResult{Err: fmt.Errorf("analyze image: empty analysis")}
	}
	return PageResult{Text: out}
}
