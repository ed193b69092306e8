package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid whisper config",
			config: Config{
				Transcriber: TranscriberConfig{
					Whisper: WhisperConfig{
						ModelPath:  "models/test.bin",
						BinaryPath: "./whisper",
					},
				},
				Paths: PathsConfig{Input: "data/input", Output: "data/output"},
			},
			wantErr: false,
		},
		{
			name: "valid openai config without key",
			config: Config{
				Transcriber: TranscriberConfig{Backend: BackendOpenAI},
				Paths:       PathsConfig{Input: "data/input", Output: "data/output"},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Transcriber: TranscriberConfig{
					Whisper: WhisperConfig{BinaryPath: "./whisper"},
				},
				Paths: PathsConfig{Input: "data/input", Output: "data/output"},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Transcriber: TranscriberConfig{Backend: "vosk"},
				Paths:       PathsConfig{Input: "data/input", Output: "data/output"},
			},
			wantErr: true,
		},
		{
			name: "negative budget",
			config: Config{
				Transcriber: TranscriberConfig{Backend: BackendOpenAI},
				Paths:       PathsConfig{Input: "data/input", Output: "data/output"},
				Analysis:    AnalysisConfig{MaxInputChars: -2},
			},
			wantErr: true,
		},
		{
			name: "missing paths",
			config: Config{
				Transcriber: TranscriberConfig{Backend: BackendOpenAI},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := Config{
		Transcriber: TranscriberConfig{Backend: BackendOpenAI},
		Paths:       PathsConfig{Input: "in", Output: "out"},
		Gemini:      GeminiConfig{Model: "gemini-pro"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	if cfg.Analysis.MaxInputChars != DefaultMaxInputChars {
		t.Errorf("MaxInputChars = %d, want %d", cfg.Analysis.MaxInputChars, DefaultMaxInputChars)
	}
	if cfg.Gemini.VisionModel != "gemini-pro" {
		t.Errorf("VisionModel = %q, want model fallback", cfg.Gemini.VisionModel)
	}
	if cfg.PDF.DPI != 200 {
		t.Errorf("DPI = %d, want 200", cfg.PDF.DPI)
	}
	if cfg.Paths.Temp != "data/temp" {
		t.Errorf("Temp = %q", cfg.Paths.Temp)
	}
}

func TestValidateKeepsUnlimitedBudget(t *testing.T) {
	cfg := Config{
		Transcriber: TranscriberConfig{Backend: BackendOpenAI},
		Paths:       PathsConfig{Input: "in", Output: "out"},
		Analysis:    AnalysisConfig{MaxInputChars: UnlimitedInput},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Analysis.MaxInputChars != UnlimitedInput {
		t.Errorf("MaxInputChars = %d, want %d", cfg.Analysis.MaxInputChars, UnlimitedInput)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "k2, k3,")
	t.Setenv("GEMINI_API_KEY", "k1")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
paths:
  input: "data/input"
  output: "data/output"

transcriber:
  backend: "whisper"
  whisper:
    model_path: "models/test.bin"
    binary_path: "./whisper"
    language: "en"

gemini:
  api_keys: ["k1"]

analysis:
  max_input_chars: 1000

output:
  docx: true

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcriber.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Transcriber.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Analysis.MaxInputChars != 1000 {
		t.Errorf("MaxInputChars = %d, want 1000", cfg.Analysis.MaxInputChars)
	}
	if !cfg.Output.Docx {
		t.Error("Output.Docx = false, want true")
	}
	if diff := cmp.Diff([]string{"k1", "k2", "k3"}, cfg.Gemini.APIKeys); diff != "" {
		t.Errorf("APIKeys mismatch (-want +got):\n%s", diff)
	}
	if cfg.Transcriber.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %q", cfg.Transcriber.OpenAI.APIKey)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("paths: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for invalid yaml")
	}
}
