package formatter

import (
	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// Formatter renders a NoteDocument into concrete bytes. Rendering is a pure
// function of the document and format; section order is always title and
// metadata, transcript, key points, summary, quiz questions.
type Formatter interface {
	Render(doc domain.NoteDocument, format domain.OutputFormat) ([]byte, error)
}

// New creates a new Formatter instance
func New() Formatter {
	return &implFormatter{}
}

type implFormatter struct{}

// Render dispatches on the format tag. An unknown format is a caller
// contract violation, reported as UnsupportedFormat.
func (f *implFormatter) Render(doc domain.NoteDocument, format domain.OutputFormat) ([]byte, error) {
	switch format {
	case domain.FormatMarkdown:
		return renderMarkdown(doc), nil
	case domain.FormatHTML:
		return renderHTML(doc), nil
	case domain.FormatText:
		return renderText(doc), nil
	case domain.FormatPDF:
		return renderPDF(doc)
	case domain.FormatDOCX:
		return renderDOCX(doc)
	default:
		return nil, domain.NewError(domain.KindUnsupportedFormat, "unsupported output format %q", format)
	}
}
