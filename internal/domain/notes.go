package domain

import (
	"fmt"
	"strings"
	"time"
)

// LanguageHint selects the transcription language, or lets the engine guess.
type LanguageHint string

const (
	LanguageBangla     LanguageHint = "bn"
	LanguageEnglish    LanguageHint = "en"
	LanguageAutoDetect LanguageHint = "auto"
)

// ParseLanguageHint maps a config/CLI value to a LanguageHint.
func ParseLanguageHint(s string) (LanguageHint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bn", "bangla":
		return LanguageBangla, nil
	case "en", "english":
		return LanguageEnglish, nil
	case "auto", "":
		return LanguageAutoDetect, nil
	default:
		return "", fmt.Errorf("unknown language %q (want bn, en or auto)", s)
	}
}

// Transcript is the plain-text output of transcription, tagged with the
// language the engine actually used (resolved from auto-detect when needed).
type Transcript struct {
	Text     string
	Language LanguageHint
}

// KeyPointSet is an ordered list of salient statements, appearance order.
type KeyPointSet []string

// DetailLevel controls summary verbosity.
type DetailLevel string

const (
	DetailMinimal  DetailLevel = "minimal"
	DetailStandard DetailLevel = "standard"
	DetailDetailed DetailLevel = "detailed"
)

// ParseDetailLevel maps a config/CLI value to a DetailLevel.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return DetailMinimal, nil
	case "standard", "":
		return DetailStandard, nil
	case "detailed":
		return DetailDetailed, nil
	default:
		return "", fmt.Errorf("unknown detail level %q (want minimal, standard or detailed)", s)
	}
}

// Summary is a condensed narrative derived from a transcript.
type Summary struct {
	Text   string
	Detail DetailLevel
}

// QuizQuestion is a single comprehension prompt.
type QuizQuestion struct {
	Prompt string
}

// OutputFormat selects the rendered document format.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatText     OutputFormat = "txt"
	FormatPDF      OutputFormat = "pdf"
	FormatDOCX     OutputFormat = "docx"
)

// ParseOutputFormat maps a config/CLI value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md", "":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "txt", "text", "plain":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	case "docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want markdown, html, txt, pdf or docx)", s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f OutputFormat) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

// NoteDocument is the terminal aggregate assembled by the orchestrator and
// rendered by the formatter. It is format-agnostic.
type NoteDocument struct {
	Subject     string
	Source      string
	GeneratedAt time.Time
	Format      OutputFormat

	Transcript Transcript
	KeyPoints  KeyPointSet
	Summary    Summary
	Quiz       []QuizQuestion
}
