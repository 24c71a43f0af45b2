package formatter

import (
	"fmt"
	"html"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

func renderHTML(doc domain.NoteDocument) []byte {
	var b strings.Builder
	esc := html.EscapeString

	title := esc(documentTitle(doc))
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString("</head>\n<body>\n")

	fmt.Fprintf(&b, "<h1>%s</h1>\n", title)
	b.WriteString("<ul>\n")
	fmt.Fprintf(&b, "<li><strong>Source:</strong> %s</li>\n", esc(doc.Source))
	fmt.Fprintf(&b, "<li><strong>Generated:</strong> %s</li>\n", formatTimestamp(doc.GeneratedAt))
	fmt.Fprintf(&b, "<li><strong>Language:</strong> %s</li>\n", esc(string(doc.Transcript.Language)))
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<h2>%s</h2>\n<p>%s</p>\n", sectionTranscript, esc(doc.Transcript.Text))

	fmt.Fprintf(&b, "<h2>%s</h2>\n<ul>\n", sectionKeyPoints)
	for _, point := range doc.KeyPoints {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(point))
	}
	b.WriteString("</ul>\n")

	fmt.Fprintf(&b, "<h2>%s</h2>\n<p>%s</p>\n", sectionSummary, esc(doc.Summary.Text))

	fmt.Fprintf(&b, "<h2>%s</h2>\n<ol>\n", sectionQuiz)
	for _, q := range doc.Quiz {
		fmt.Fprintf(&b, "<li>%s</li>\n", esc(q.Prompt))
	}
	b.WriteString("</ol>\n")

	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}
