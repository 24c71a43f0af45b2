package formatter

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

func renderMarkdown(doc domain.NoteDocument) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", documentTitle(doc))
	fmt.Fprintf(&b, "- **Source:** %s\n", doc.Source)
	fmt.Fprintf(&b, "- **Generated:** %s\n", formatTimestamp(doc.GeneratedAt))
	fmt.Fprintf(&b, "- **Language:** %s\n\n", doc.Transcript.Language)

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", sectionTranscript, doc.Transcript.Text)

	fmt.Fprintf(&b, "## %s\n\n", sectionKeyPoints)
	for _, point := range doc.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", point)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n\n%s\n\n", sectionSummary, doc.Summary.Text)

	fmt.Fprintf(&b, "## %s\n\n", sectionQuiz)
	for i, q := range doc.Quiz {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)
	}

	return []byte(b.String())
}
