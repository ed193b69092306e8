package llm

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
	"google.golang.org/genai"
)

type implGemini struct {
	apiKeys     []string
	currentKey  int
	clients     map[string]*genai.Client
	model       string
	visionModel string
	temperature float32
	logger      logger.Logger
	generate    generateFunc
}

// NewGemini creates a Client backed by the Gemini API that rotates through
// the configured API keys when one is rate limited.
func NewGemini(cfg config.GeminiConfig, log logger.Logger) Client {
	g := &implGemini{
		apiKeys:     cfg.APIKeys,
		clients:     make(map[string]*genai.Client),
		model:       cfg.Model,
		visionModel: cfg.VisionModel,
		temperature: cfg.Temperature,
		logger:      log,
	}
	g.generate = g.callGemini
	return g
}
