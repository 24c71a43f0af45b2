package notes

import "strings"

// sentence is one statement plus the byte offset just past its terminator in
// the original text, so summaries can be cut at sentence boundaries.
type sentence struct {
	text string
	end  int
}

// sentence terminators: Latin punctuation plus the Bangla danda.
func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '।'
}

// splitSentences breaks text into trimmed, non-empty statements. Text with
// no terminator at all is one statement spanning the whole input.
func splitSentences(text string) []sentence {
	var out []sentence
	start := 0

	for i, r := range text {
		if !isTerminator(r) {
			continue
		}
		end := i + len(string(r))
		if s := strings.TrimSpace(text[start:i]); s != "" {
			out = append(out, sentence{text: s, end: end})
		}
		start = end
	}

	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, sentence{text: s, end: len(text)})
	}

	return out
}
