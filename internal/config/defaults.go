package config

// DefaultMaxInputChars is the prefix length sent to the LLM when
// analysis.max_input_chars is unset.
const DefaultMaxInputChars = 25000

// UnlimitedInput disables truncation when set as analysis.max_input_chars.
const UnlimitedInput = -1

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(c *Config) {
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Transcriber.Backend == "" {
		c.Transcriber.Backend = BackendWhisper
	}
	if c.Transcriber.Whisper.Threads == 0 {
		c.Transcriber.Whisper.Threads = 8
	}
	if c.Transcriber.OpenAI.Model == "" {
		c.Transcriber.OpenAI.Model = "whisper-1"
	}
	if c.Transcriber.OpenAI.Endpoint == "" {
		c.Transcriber.OpenAI.Endpoint = "https://api.openai.com/v1/audio/transcriptions"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.PDF.RasterizerPath == "" {
		c.PDF.RasterizerPath = "pdftoppm"
	}
	if c.PDF.DPI == 0 {
		c.PDF.DPI = 200
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.VisionModel == "" {
		c.Gemini.VisionModel = c.Gemini.Model
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.3
	}
	if c.Analysis.MaxInputChars == 0 {
		c.Analysis.MaxInputChars = DefaultMaxInputChars
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}
