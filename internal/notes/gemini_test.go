package notes

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

func TestTruncateToSentence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"fits untouched", "Short answer.", 100, "Short answer."},
		{"cut at last full sentence", "First. Second. Third trailing fragment", 16, "First. Second."},
		{"no boundary inside limit", "no punctuation here at all", 10, "no punctua"},
		{"bangla danda boundary", strings.Repeat("আকাশ নীল। ", 20), 50, "আকাশ নীল।"},
		{"bangla without terminator keeps whole runes", strings.Repeat("আ", 20), 50, strings.Repeat("আ", 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateToSentence(tt.text, tt.limit)
			if got != tt.want {
				t.Errorf("truncateToSentence() = %q, want %q", got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateToSentence() produced invalid UTF-8: %q", got)
			}
			if len(got) > tt.limit {
				t.Errorf("truncateToSentence() returned %d bytes, limit %d", len(got), tt.limit)
			}
		})
	}
}

// Batch workers share one summarizer, so key rotation must be safe under
// concurrent quota failures.
func TestKeyRotationConcurrent(t *testing.T) {
	s := NewGeminiSummarizer([]string{"key-a", "key-b", "key-c"}, "gemini-2.5-flash", logger.NewNop()).(*implGemini)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.rotateKey()
				key, idx := s.keyForAttempt()
				if key == "" || idx < 0 || idx >= 3 {
					t.Errorf("keyForAttempt() = %q, %d", key, idx)
					return
				}
			}
		}()
	}
	wg.Wait()

	if _, idx := s.keyForAttempt(); idx < 0 || idx >= 3 {
		t.Errorf("final key index %d out of range", idx)
	}
}
