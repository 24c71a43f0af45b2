package formatter

import (
	"time"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// Section titles shared by every renderer so the document structure is
// identical across formats.
const (
	titlePrefix       = "Lecture Notes"
	sectionTranscript = "Transcript"
	sectionKeyPoints  = "Key Points"
	sectionSummary    = "Summary"
	sectionQuiz       = "Quiz Questions"

	timestampLayout = "2006-01-02 15:04"
)

func documentTitle(doc domain.NoteDocument) string {
	if doc.Subject == "" {
		return titlePrefix
	}
	return titlePrefix + ": " + doc.Subject
}

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}
