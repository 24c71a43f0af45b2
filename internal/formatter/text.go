package formatter

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

func renderText(doc domain.NoteDocument) []byte {
	var b strings.Builder

	title := documentTitle(doc)
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	fmt.Fprintf(&b, "Source: %s\n", doc.Source)
	fmt.Fprintf(&b, "Generated: %s\n", formatTimestamp(doc.GeneratedAt))
	fmt.Fprintf(&b, "Language: %s\n\n", doc.Transcript.Language)

	writeTextSection(&b, sectionTranscript)
	b.WriteString(doc.Transcript.Text + "\n\n")

	writeTextSection(&b, sectionKeyPoints)
	for _, point := range doc.KeyPoints {
		fmt.Fprintf(&b, "  * %s\n", point)
	}
	b.WriteString("\n")

	writeTextSection(&b, sectionSummary)
	b.WriteString(doc.Summary.Text + "\n\n")

	writeTextSection(&b, sectionQuiz)
	for i, q := range doc.Quiz {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, q.Prompt)
	}

	return []byte(b.String())
}

func writeTextSection(b *strings.Builder, name string) {
	b.WriteString(name + "\n")
	b.WriteString(strings.Repeat("-", len(name)) + "\n")
}
