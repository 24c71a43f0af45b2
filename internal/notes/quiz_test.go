package notes

import (
	"context"
	"testing"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		max        int
		wantLen    int
	}{
		{"cap respected", "One. Two. Three. Four. Five. Six. Seven.", 5, 5},
		{"fewer sentences than cap", "One. Two.", 5, 2},
		{"zero cap yields nothing", "One. Two. Three.", 0, 0},
		{"negative cap yields nothing", "One. Two.", -3, 0},
		{"empty transcript", "", 5, 0},
		{"single sentence yields one question", "Water boils at 100 degrees.", 5, 1},
		{"no terminator still yields one question", "gravity pulls things down", 5, 1},
	}

	g := NewQuizGenerator(logger.NewNop())
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.Generate(ctx, domain.Transcript{Text: tt.transcript}, tt.max)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("Generate() returned %d questions, want %d", len(got), tt.wantLen)
			}
			if tt.max >= 0 && len(got) > tt.max {
				t.Errorf("Generate() returned %d questions, cap is %d", len(got), tt.max)
			}
		})
	}
}

func TestGenerateOrderAndPrompts(t *testing.T) {
	g := NewQuizGenerator(logger.NewNop())

	questions, err := g.Generate(context.Background(),
		domain.Transcript{Text: "The sky is blue. Water boils at 100 degrees."}, 5)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := []string{
		"What is: The sky is blue?",
		"What is: Water boils at 100 degrees?",
	}
	if len(questions) != len(want) {
		t.Fatalf("Generate() returned %d questions, want %d", len(questions), len(want))
	}
	for i, q := range questions {
		if q.Prompt != want[i] {
			t.Errorf("question %d = %q, want %q", i, q.Prompt, want[i])
		}
	}
}
