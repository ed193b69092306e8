// Package llm wraps the multimodal LLM collaborator behind a single
// injectable capability.
package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned on the first call when no key is configured.
var ErrMissingAPIKey = errors.New("llm: no api key configured")

// Client issues one completion request and returns the raw completion text.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is a single prompt, optionally carrying images.
type Request struct {
	System string
	Prompt string
	Images []Image
	// Temperature overrides the client default when non-zero.
	Temperature float32
}

// Image is an inline image part.
type Image struct {
	Data     []byte
	MIMEType string
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (string, error)

func (f ClientFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
