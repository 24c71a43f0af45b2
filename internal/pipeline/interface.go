package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// RunParams are the per-run knobs shared by single and batch mode. They are
// read once at run start; nothing mutates them mid-run.
type RunParams struct {
	Subject      string
	Language     domain.LanguageHint
	Detail       domain.DetailLevel
	Format       domain.OutputFormat
	MaxQuestions int
	KeepAudio    bool

	// OutputPath overrides the default output location when non-empty.
	// Ignored in batch mode, where each item derives its own path.
	OutputPath string
}

// Orchestrator sequences normalization, transcription, the three
// transcript-derived stages and formatting for one input, and exposes a
// batch mode with per-item isolation.
type Orchestrator interface {
	Run(ctx context.Context, source domain.AudioSource, params RunParams) domain.PipelineRunResult
	RunBatch(ctx context.Context, sources []domain.AudioSource, params RunParams) []domain.PipelineRunResult
}
