package notes

import (
	"context"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// KeypointExtractor derives an ordered list of salient statements from a
// transcript. Deterministic for identical transcript and subject.
type KeypointExtractor interface {
	Extract(ctx context.Context, transcript domain.Transcript, subject string) (domain.KeyPointSet, error)
}

// Summarizer condenses a transcript into a narrative summary whose length
// grows with the detail level and never exceeds the transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript domain.Transcript, detail domain.DetailLevel) (domain.Summary, error)
}

// QuizGenerator derives at most maxQuestions comprehension prompts, in the
// order their source statements occur in the transcript.
type QuizGenerator interface {
	Generate(ctx context.Context, transcript domain.Transcript, maxQuestions int) ([]domain.QuizQuestion, error)
}
