package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// Normalize dispatches on the source kind and produces the canonical audio
// artifact. The returned NormalizedAudio is owned by the caller, which must
// call Release exactly once.
func (n *implNormalizer) Normalize(ctx context.Context, src domain.AudioSource) (*domain.NormalizedAudio, error) {
	switch src.Kind {
	case domain.SourceLocalFile:
		return n.normalizeFile(ctx, src.Path)
	case domain.SourceMicrophone:
		return n.normalizeMicrophone(ctx, src)
	case domain.SourceRemoteURL:
		return n.normalizeRemote(ctx, src.URL)
	default:
		return nil, domain.NewError(domain.KindInternal, "unknown audio source kind %q", src.Kind)
	}
}

// tempPath generates a collision-free temp file name. Concurrent batch
// workers share the temp directory, so the name carries the input identity,
// a nanosecond timestamp and a random suffix.
func (n *implNormalizer) tempPath(stem string) string {
	name := fmt.Sprintf("%s-%d-%s.wav", sanitizeStem(stem), time.Now().UnixNano(), uuid.NewString()[:8])
	return filepath.Join(n.cfg.Paths.Temp, name)
}

func sanitizeStem(stem string) string {
	stem = strings.TrimSuffix(filepath.Base(stem), filepath.Ext(stem))
	stem = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, stem)
	if stem == "" {
		stem = "audio"
	}
	return stem
}

// encodeArgs builds the ffmpeg arguments converting any container into the
// canonical encoding expected by the transcription engines.
func (n *implNormalizer) encodeArgs(input, output string) []string {
	return []string{
		"-i", input,
		"-vn",
		"-ar", strconv.Itoa(n.cfg.FFmpeg.SampleRate),
		"-ac", strconv.Itoa(n.cfg.FFmpeg.Channels),
		"-c:a", n.cfg.FFmpeg.AudioCodec,
		"-y",
		output,
	}
}

func (n *implNormalizer) newArtifact(path string, duration time.Duration) *domain.NormalizedAudio {
	return &domain.NormalizedAudio{
		Path:       path,
		Duration:   duration,
		SampleRate: n.cfg.FFmpeg.SampleRate,
		Channels:   n.cfg.FFmpeg.Channels,
	}
}
