package domain

import "time"

// RunState tracks where a single pipeline run is in its lifecycle.
type RunState string

const (
	StateStart        RunState = "start"
	StateNormalizing  RunState = "normalizing"
	StateTranscribing RunState = "transcribing"
	StateExtracting   RunState = "extracting"
	StateFormatting   RunState = "formatting"
	StateSaving       RunState = "saving"
	StateDone         RunState = "done"
	StateFailed       RunState = "failed"
)

// ValidTransition enforces the allowed run state machine edges. Failed is
// reachable from every non-terminal state.
func ValidTransition(from, to RunState) bool {
	if to == StateFailed {
		return from != StateDone && from != StateFailed
	}
	switch from {
	case StateStart:
		return to == StateNormalizing
	case StateNormalizing:
		return to == StateTranscribing
	case StateTranscribing:
		return to == StateExtracting
	case StateExtracting:
		return to == StateFormatting
	case StateFormatting:
		return to == StateSaving
	case StateSaving:
		return to == StateDone
	default:
		return false
	}
}

// RunStatus is the terminal outcome of one run.
type RunStatus string

const (
	StatusSuccess     RunStatus = "success"
	StatusError       RunStatus = "error"
	StatusInterrupted RunStatus = "interrupted"
)

// PipelineRunResult is returned for every processed input, success or not.
// Batch mode yields one per source, in input order.
type PipelineRunResult struct {
	Status     RunStatus
	Source     string
	OutputPath string

	TranscriptChars int
	KeyPointCount   int
	QuizCount       int

	Elapsed time.Duration

	// ErrorKind and ErrorMessage are set when Status != StatusSuccess.
	ErrorKind    Kind
	ErrorMessage string
}

// Failed builds a failure result from a classified error.
func Failed(source string, elapsed time.Duration, err error) PipelineRunResult {
	kind := KindOf(err)
	status := StatusError
	if kind == KindInterrupted {
		status = StatusInterrupted
	}
	return PipelineRunResult{
		Status:       status,
		Source:       source,
		Elapsed:      elapsed,
		ErrorKind:    kind,
		ErrorMessage: err.Error(),
	}
}
