package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

type Config struct {
	Notes       NotesConfig       `yaml:"notes"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Downloader  DownloaderConfig  `yaml:"downloader"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type NotesConfig struct {
	Subject          string `yaml:"subject"`
	Language         string `yaml:"language"`
	OutputFormat     string `yaml:"output_format"`
	DetailLevel      string `yaml:"detail_level"`
	ModelSize        string `yaml:"model_size"`
	MaxQuizQuestions int    `yaml:"max_quiz_questions"`
	KeepAudio        bool   `yaml:"keep_audio"`
	SummaryEngine    string `yaml:"summary_engine"`
}

type TranscriberConfig struct {
	Engine      string `yaml:"engine"`
	OpenAIModel string `yaml:"openai_model"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
	AudioCodec string `yaml:"audio_codec"`
	MicDevice  string `yaml:"mic_device"`
}

type DownloaderConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
	Watch  string `yaml:"watch"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}

	return &cfg, nil
}

// Default returns a config with every field at its default, for running
// without a config file.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	if c.Notes.Subject == "" {
		c.Notes.Subject = "General"
	}
	if c.Notes.Language == "" {
		c.Notes.Language = "auto"
	}
	if _, err := domain.ParseLanguageHint(c.Notes.Language); err != nil {
		return fmt.Errorf("notes.language: %w", err)
	}
	if c.Notes.OutputFormat == "" {
		c.Notes.OutputFormat = "markdown"
	}
	if _, err := domain.ParseOutputFormat(c.Notes.OutputFormat); err != nil {
		return fmt.Errorf("notes.output_format: %w", err)
	}
	if c.Notes.DetailLevel == "" {
		c.Notes.DetailLevel = "standard"
	}
	if _, err := domain.ParseDetailLevel(c.Notes.DetailLevel); err != nil {
		return fmt.Errorf("notes.detail_level: %w", err)
	}
	if c.Notes.ModelSize == "" {
		c.Notes.ModelSize = "base"
	}
	if c.Notes.MaxQuizQuestions < 0 {
		return fmt.Errorf("notes.max_quiz_questions must be >= 0")
	}
	if c.Notes.MaxQuizQuestions == 0 {
		c.Notes.MaxQuizQuestions = 5
	}
	if c.Notes.SummaryEngine == "" {
		c.Notes.SummaryEngine = "extractive"
	}
	if c.Notes.SummaryEngine != "extractive" && c.Notes.SummaryEngine != "gemini" {
		return fmt.Errorf("notes.summary_engine must be extractive or gemini")
	}

	if c.Transcriber.Engine == "" {
		c.Transcriber.Engine = "whisper"
	}
	if c.Transcriber.Engine != "whisper" && c.Transcriber.Engine != "openai" {
		return fmt.Errorf("transcriber.engine must be whisper or openai")
	}
	if c.Transcriber.OpenAIModel == "" {
		c.Transcriber.OpenAIModel = "whisper-1"
	}

	if c.Transcriber.Engine == "whisper" {
		if c.Whisper.BinaryPath == "" {
			c.Whisper.BinaryPath = "whisper-cli"
		}
		if c.Whisper.ModelPath == "" {
			c.Whisper.ModelPath = fmt.Sprintf("models/ggml-%s.bin", c.Notes.ModelSize)
		}
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}

	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "pcm_s16le"
	}

	if c.Downloader.BinaryPath == "" {
		c.Downloader.BinaryPath = "yt-dlp"
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "notes"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be >= 0")
	}

	return nil
}
