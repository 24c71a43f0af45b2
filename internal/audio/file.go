package audio

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// normalizeFile validates a local file and re-encodes it into the canonical
// format. The original file is never touched.
func (n *implNormalizer) normalizeFile(ctx context.Context, path string) (*domain.NormalizedAudio, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewError(domain.KindInputNotFound, "input file not found: %s", path)
		}
		return nil, domain.WrapError(domain.KindInputNotFound, err, "stat input %s", path)
	}
	if info.IsDir() {
		return nil, domain.NewError(domain.KindInputNotFound, "input is a directory: %s", path)
	}

	outPath := n.tempPath(path)
	n.logger.Info(ctx, "Normalizing audio: %s -> %s", path, outPath)

	if _, err := n.executor.Execute(ctx, "ffmpeg", n.encodeArgs(path, outPath)...); err != nil {
		os.Remove(outPath)
		if ctx.Err() != nil {
			return nil, domain.WrapError(domain.KindInterrupted, ctx.Err(), "normalize %s", path)
		}
		return nil, domain.WrapError(domain.KindInternal, err, "ffmpeg re-encode %s", path)
	}

	duration := n.probeDuration(ctx, outPath)
	n.logger.Debug(ctx, "Normalized %s (duration %s)", outPath, duration)

	return n.newArtifact(outPath, duration), nil
}
