package notes

import (
	"context"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

func TestSummarizeMonotonicLength(t *testing.T) {
	transcripts := []string{
		"One. Two. Three. Four. Five. Six. Seven. Eight. Nine. Ten.",
		"A single statement without a terminator",
		"Short. Pair.",
		"The mitochondria is the powerhouse of the cell. ATP stores energy. " +
			"Glycolysis happens in the cytoplasm. The Krebs cycle follows. " +
			"Oxidative phosphorylation produces most ATP.",
	}

	s := NewExtractiveSummarizer(logger.NewNop())
	ctx := context.Background()

	for _, text := range transcripts {
		transcript := domain.Transcript{Text: text}

		minimal, err := s.Summarize(ctx, transcript, domain.DetailMinimal)
		if err != nil {
			t.Fatalf("Summarize(minimal) error = %v", err)
		}
		standard, err := s.Summarize(ctx, transcript, domain.DetailStandard)
		if err != nil {
			t.Fatalf("Summarize(standard) error = %v", err)
		}
		detailed, err := s.Summarize(ctx, transcript, domain.DetailDetailed)
		if err != nil {
			t.Fatalf("Summarize(detailed) error = %v", err)
		}

		if len(minimal.Text) > len(standard.Text) {
			t.Errorf("minimal longer than standard for %q: %d > %d", text, len(minimal.Text), len(standard.Text))
		}
		if len(standard.Text) > len(detailed.Text) {
			t.Errorf("standard longer than detailed for %q: %d > %d", text, len(standard.Text), len(detailed.Text))
		}
		if len(detailed.Text) > len(text) {
			t.Errorf("detailed summary longer than transcript for %q", text)
		}
		if minimal.Text == "" {
			t.Errorf("minimal summary empty for non-empty transcript %q", text)
		}
	}
}

func TestSummarizeEmptyTranscript(t *testing.T) {
	s := NewExtractiveSummarizer(logger.NewNop())

	summary, err := s.Summarize(context.Background(), domain.Transcript{Text: "  "}, domain.DetailStandard)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Text != "" {
		t.Errorf("Summarize() = %q, want empty", summary.Text)
	}
	if summary.Detail != domain.DetailStandard {
		t.Errorf("Detail = %v, want standard", summary.Detail)
	}
}

func TestSummarizeCutsAtSentenceBoundary(t *testing.T) {
	s := NewExtractiveSummarizer(logger.NewNop())
	transcript := domain.Transcript{
		Text: "First fact. Second fact. Third fact. Fourth fact. Fifth fact. Sixth fact.",
	}

	summary, err := s.Summarize(context.Background(), transcript, domain.DetailMinimal)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !strings.HasSuffix(summary.Text, ".") {
		t.Errorf("summary should end at a sentence boundary, got %q", summary.Text)
	}
	if !strings.HasPrefix(transcript.Text, summary.Text) {
		t.Errorf("extractive summary should be a transcript prefix, got %q", summary.Text)
	}
}

func TestSentenceBudget(t *testing.T) {
	for n := 1; n <= 50; n++ {
		minimal := sentenceBudget(n, domain.DetailMinimal)
		standard := sentenceBudget(n, domain.DetailStandard)
		detailed := sentenceBudget(n, domain.DetailDetailed)

		if minimal < 1 {
			t.Errorf("n=%d: minimal budget %d < 1", n, minimal)
		}
		if minimal > standard || standard > detailed {
			t.Errorf("n=%d: budgets not monotonic: %d, %d, %d", n, minimal, standard, detailed)
		}
		if detailed > n {
			t.Errorf("n=%d: detailed budget %d exceeds sentence count", n, detailed)
		}
	}
}
