package formatter

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

const (
	pdfBodySize    = 11.0
	pdfHeadingSize = 14.0
	pdfTitleSize   = 18.0
	pdfLineHeight  = 5.5
)

func renderPDF(doc domain.NoteDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", pdfTitleSize)
	pdf.MultiCell(0, 8, tr(documentTitle(doc)), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", pdfBodySize)
	pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("Source: %s", doc.Source)), "", "L", false)
	pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("Generated: %s", formatTimestamp(doc.GeneratedAt))), "", "L", false)
	pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("Language: %s", doc.Transcript.Language)), "", "L", false)

	writePDFSection(pdf, tr, sectionTranscript)
	pdf.MultiCell(0, pdfLineHeight, tr(doc.Transcript.Text), "", "L", false)

	writePDFSection(pdf, tr, sectionKeyPoints)
	for _, point := range doc.KeyPoints {
		pdf.MultiCell(0, pdfLineHeight, tr("- "+point), "", "L", false)
	}

	writePDFSection(pdf, tr, sectionSummary)
	pdf.MultiCell(0, pdfLineHeight, tr(doc.Summary.Text), "", "L", false)

	writePDFSection(pdf, tr, sectionQuiz)
	for i, q := range doc.Quiz {
		pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("%d. %s", i+1, q.Prompt)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFSection(pdf *fpdf.Fpdf, tr func(string) string, name string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", pdfHeadingSize)
	pdf.MultiCell(0, 7, tr(name), "", "L", false)
	pdf.SetFont("Helvetica", "", pdfBodySize)
}
