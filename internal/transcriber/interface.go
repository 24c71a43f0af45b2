package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// Transcriber converts normalized audio into a plain-text transcript. The
// stage may legitimately return short or empty text (silence); rejecting
// that is the orchestrator's job, not the engine's.
type Transcriber interface {
	Transcribe(ctx context.Context, audio *domain.NormalizedAudio, hint domain.LanguageHint) (domain.Transcript, error)
}
