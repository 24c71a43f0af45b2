package formatter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

const (
	docxFont        = "Times New Roman"
	docxBodySize    = 13
	docxHeadingSize = 15
	docxTitleSize   = 16
)

func renderDOCX(doc domain.NoteDocument) ([]byte, error) {
	d, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("create docx: %w", err)
	}

	addStyledRun(d.AddParagraph(""), documentTitle(doc), true, docxTitleSize)
	addStyledRun(d.AddParagraph(""), fmt.Sprintf("Source: %s", doc.Source), false, docxBodySize)
	addStyledRun(d.AddParagraph(""), fmt.Sprintf("Generated: %s", formatTimestamp(doc.GeneratedAt)), false, docxBodySize)
	addStyledRun(d.AddParagraph(""), fmt.Sprintf("Language: %s", doc.Transcript.Language), false, docxBodySize)

	addDocxSection(d, sectionTranscript)
	addStyledRun(d.AddParagraph(""), doc.Transcript.Text, false, docxBodySize)

	addDocxSection(d, sectionKeyPoints)
	for _, point := range doc.KeyPoints {
		addStyledRun(d.AddParagraph(""), "• "+point, false, docxBodySize)
	}

	addDocxSection(d, sectionSummary)
	addStyledRun(d.AddParagraph(""), doc.Summary.Text, false, docxBodySize)

	addDocxSection(d, sectionQuiz)
	for i, q := range doc.Quiz {
		addStyledRun(d.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, q.Prompt), false, docxBodySize)
	}

	// godocx only saves to a path, so render through a scratch file.
	scratch := filepath.Join(os.TempDir(), fmt.Sprintf("noteflow-%s.docx", uuid.NewString()[:8]))
	defer os.Remove(scratch)

	if err := d.SaveTo(scratch); err != nil {
		return nil, fmt.Errorf("save docx: %w", err)
	}

	data, err := os.ReadFile(scratch)
	if err != nil {
		return nil, fmt.Errorf("read rendered docx: %w", err)
	}
	return data, nil
}

func addDocxSection(d *docx.RootDoc, name string) {
	d.AddParagraph("")
	addStyledRun(d.AddParagraph(""), name, true, docxHeadingSize)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(docxFont).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
