package domain

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure. Every expected failure maps to exactly
// one kind; anything else is wrapped as KindInternal with its message kept.
type Kind string

const (
	KindInputNotFound      Kind = "input_not_found"
	KindInvalidSourceURL   Kind = "invalid_source_url"
	KindDownloadFailed     Kind = "download_failed"
	KindDeviceUnavailable  Kind = "device_unavailable"
	KindNoAudioCaptured    Kind = "no_audio_captured"
	KindTranscriptionError Kind = "transcription_engine_error"
	KindEmptyTranscript    Kind = "empty_transcript"
	KindExtractionError    Kind = "extraction_error"
	KindSummarizationError Kind = "summarization_error"
	KindUnsupportedFormat  Kind = "unsupported_format"
	KindOutputWriteError   Kind = "output_write_error"
	KindInterrupted        Kind = "interrupted"
	KindInternal           Kind = "internal_error"
)

// PipelineError is a stage-aware classified error. Stage names the pipeline
// state in which the failure occurred.
type PipelineError struct {
	Kind    Kind
	Stage   string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stage == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.Kind, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a classified error with a formatted message.
func NewError(kind Kind, format string, args ...interface{}) *PipelineError {
	return &PipelineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError classifies an existing error, preserving it as the cause.
func WrapError(kind Kind, err error, format string, args ...interface{}) *PipelineError {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &PipelineError{Kind: kind, Message: msg, Err: err}
}

// KindOf extracts the failure kind from any error in the chain. Unclassified
// errors report KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindInterrupted
	}
	return KindInternal
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
