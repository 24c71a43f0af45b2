package notes

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

type implExtractive struct {
	logger logger.Logger
}

// NewExtractiveSummarizer creates the default summarization engine: a
// sentence-boundary prefix of the transcript, sized by detail level. Prefixes
// nest across levels, so minimal <= standard <= detailed always holds and no
// summary can outgrow its transcript.
func NewExtractiveSummarizer(log logger.Logger) Summarizer {
	return &implExtractive{logger: log}
}

func (s *implExtractive) Summarize(ctx context.Context, transcript domain.Transcript, detail domain.DetailLevel) (domain.Summary, error) {
	sentences := splitSentences(transcript.Text)
	if len(sentences) == 0 {
		return domain.Summary{Detail: detail}, nil
	}

	keep := sentenceBudget(len(sentences), detail)
	cut := sentences[keep-1].end
	text := strings.TrimSpace(transcript.Text[:cut])

	s.logger.Debug(ctx, "Summarized %d sentences down to %d (%s)", len(sentences), keep, detail)
	return domain.Summary{Text: text, Detail: detail}, nil
}

// sentenceBudget maps a detail level to how many leading sentences survive.
// Ratios are ordered (1/5, 1/3, 2/3) and rounded up, so budgets are
// monotonic in the level and at least one sentence is always kept.
func sentenceBudget(n int, detail domain.DetailLevel) int {
	switch detail {
	case domain.DetailMinimal:
		return (n + 4) / 5
	case domain.DetailDetailed:
		return (2*n + 2) / 3
	default:
		return (n + 2) / 3
	}
}
