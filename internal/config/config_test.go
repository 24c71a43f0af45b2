package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid whisper config",
			config: Config{
				Transcriber: TranscriberConfig{Engine: "whisper"},
				Whisper: WhisperConfig{
					BinaryPath: "./whisper-cli",
					ModelPath:  "models/ggml-base.bin",
				},
			},
			wantErr: false,
		},
		{
			name: "bad language",
			config: Config{
				Notes: NotesConfig{Language: "fr"},
			},
			wantErr: true,
		},
		{
			name: "bad output format",
			config: Config{
				Notes: NotesConfig{OutputFormat: "rtf"},
			},
			wantErr: true,
		},
		{
			name: "bad detail level",
			config: Config{
				Notes: NotesConfig{DetailLevel: "verbose"},
			},
			wantErr: true,
		},
		{
			name: "bad transcriber engine",
			config: Config{
				Transcriber: TranscriberConfig{Engine: "siri"},
			},
			wantErr: true,
		},
		{
			name: "negative quiz bound",
			config: Config{
				Notes: NotesConfig{MaxQuizQuestions: -1},
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

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Notes.Subject != "General" {
		t.Errorf("Subject = %v, want General", cfg.Notes.Subject)
	}
	if cfg.Notes.Language != "auto" {
		t.Errorf("Language = %v, want auto", cfg.Notes.Language)
	}
	if cfg.Notes.OutputFormat != "markdown" {
		t.Errorf("OutputFormat = %v, want markdown", cfg.Notes.OutputFormat)
	}
	if cfg.Notes.DetailLevel != "standard" {
		t.Errorf("DetailLevel = %v, want standard", cfg.Notes.DetailLevel)
	}
	if cfg.Notes.ModelSize != "base" {
		t.Errorf("ModelSize = %v, want base", cfg.Notes.ModelSize)
	}
	if cfg.Notes.MaxQuizQuestions != 5 {
		t.Errorf("MaxQuizQuestions = %v, want 5", cfg.Notes.MaxQuizQuestions)
	}
	if cfg.Notes.KeepAudio {
		t.Error("KeepAudio should default to false")
	}
	if cfg.FFmpeg.SampleRate != 16000 {
		t.Errorf("SampleRate = %v, want 16000", cfg.FFmpeg.SampleRate)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
notes:
  subject: "Physics"
  language: "bn"
  output_format: "docx"
  detail_level: "detailed"
  max_quiz_questions: 3

transcriber:
  engine: "whisper"

whisper:
  binary_path: "./whisper-cli"
  model_path: "models/ggml-base.bin"

paths:
  output: "data/notes"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Notes.Subject != "Physics" {
		t.Errorf("Subject = %v, want %v", cfg.Notes.Subject, "Physics")
	}
	if cfg.Notes.Language != "bn" {
		t.Errorf("Language = %v, want bn", cfg.Notes.Language)
	}
	if cfg.Notes.MaxQuizQuestions != 3 {
		t.Errorf("MaxQuizQuestions = %v, want 3", cfg.Notes.MaxQuizQuestions)
	}
	if cfg.Paths.Output != "data/notes" {
		t.Errorf("Output = %v, want data/notes", cfg.Paths.Output)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
