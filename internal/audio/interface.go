package audio

import (
	"context"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// Normalizer resolves any supported audio source into a single local
// artifact in the pipeline's canonical encoding (16 kHz mono PCM WAV by
// default), ready for transcription.
type Normalizer interface {
	Normalize(ctx context.Context, src domain.AudioSource) (*domain.NormalizedAudio, error)
}
