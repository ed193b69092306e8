package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transcriber backends.
const (
	BackendWhisper = "whisper"
	BackendOpenAI  = "openai"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	PDF         PDFConfig         `yaml:"pdf"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type TranscriberConfig struct {
	Backend string        `yaml:"backend"`
	Whisper WhisperConfig `yaml:"whisper"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PDFConfig struct {
	RasterizerPath string `yaml:"rasterizer_path"`
	DPI            int    `yaml:"dpi"`
}

type GeminiConfig struct {
	Model       string   `yaml:"model"`
	VisionModel string   `yaml:"vision_model"`
	APIKeys     []string `yaml:"api_keys"`
	Temperature float32  `yaml:"temperature"`
}

// AnalysisConfig bounds how much text is handed to the LLM in one call.
// 0 selects DefaultMaxInputChars and -1 disables the bound.
type AnalysisConfig struct {
	MaxInputChars int `yaml:"max_input_chars"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the yaml file at path, loads credentials from the environment
// (including a .env file when present) and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// A missing .env is normal; real env vars still apply.
	_ = godotenv.Load()
	cfg.loadCredentials()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadCredentials appends API keys from the environment. Keys in the yaml
// file come first. A missing key is not an error here; it surfaces on the
// first collaborator call.
func (c *Config) loadCredentials() {
	c.Gemini.APIKeys = append(c.Gemini.APIKeys, splitKeys(os.Getenv("GEMINI_API_KEYS"))...)
	if k := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); k != "" {
		c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
	}
	c.Gemini.APIKeys = dedupe(c.Gemini.APIKeys)

	if c.Transcriber.OpenAI.APIKey == "" {
		c.Transcriber.OpenAI.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisper
	}
	switch c.Transcriber.Backend {
	case BackendWhisper:
		if c.Transcriber.Whisper.ModelPath == "" {
			return fmt.Errorf("transcriber.whisper.model_path is required")
		}
		if c.Transcriber.Whisper.BinaryPath == "" {
			return fmt.Errorf("transcriber.whisper.binary_path is required")
		}
	case BackendOpenAI:
	default:
		return fmt.Errorf("transcriber.backend %q is not one of %s, %s", c.Transcriber.Backend, BackendWhisper, BackendOpenAI)
	}

	if c.Analysis.MaxInputChars < UnlimitedInput {
		return fmt.Errorf("analysis.max_input_chars must be positive, or -1 for no limit")
	}
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		return fmt.Errorf("gemini.temperature must be between 0 and 2")
	}

	ApplyDefaults(c)
	return nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0]
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
