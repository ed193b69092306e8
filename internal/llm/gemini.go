package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type generateFunc func(ctx context.Context, key, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)

// Generate sends req to Gemini. With several keys configured, a rate limited
// key is rotated out and the call repeated on the next one; with one key the
// first failure is returned.
func (g *implGemini) Generate(ctx context.Context, req Request) (string, error) {
	if len(g.apiKeys) == 0 {
		return "", ErrMissingAPIKey
	}

	model := g.model
	if len(req.Images) > 0 {
		model = g.visionModel
	}
	contents, gcfg := g.buildContents(req)

	var lastErr error
	for range len(g.apiKeys) {
		key := g.apiKeys[g.currentKey]

		text, err := g.generate(ctx, key, model, contents, gcfg)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", err
		}

		lastErr = err
		if len(g.apiKeys) == 1 {
			break
		}
		g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
		g.rotateKey()
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) buildContents(req Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}

	temp := g.temperature
	if req.Temperature != 0 {
		temp = req.Temperature
	}
	gcfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(temp)}
	if req.System != "" {
		gcfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, gcfg
}

// callGemini performs one GenerateContent round trip with the given key.
func (g *implGemini) callGemini(ctx context.Context, key, model string, contents []*genai.Content, gcfg *genai.GenerateContentConfig) (string, error) {
	client, ok := g.clients[key]
	if !ok {
		var err error
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("create client: %w", err)
		}
		g.clients[key] = client
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, gcfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}

	return "", errors.New("empty response from Gemini")
}

func (g *implGemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
