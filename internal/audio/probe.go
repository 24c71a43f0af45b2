package audio

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// probeDuration asks ffprobe for the artifact duration. Best effort only: a
// probe failure logs a warning and reports zero, it never fails the run.
func (n *implNormalizer) probeDuration(ctx context.Context, path string) time.Duration {
	out, err := n.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		n.logger.Warn(ctx, "ffprobe failed for %s: %v", path, err)
		return 0
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		n.logger.Warn(ctx, "unexpected ffprobe output for %s: %q", path, out)
		return 0
	}

	return time.Duration(seconds * float64(time.Second))
}
