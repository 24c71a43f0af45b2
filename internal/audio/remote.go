package audio

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// remoteVideoPatterns recognize the remote sources the downloader handles.
// Anything else is rejected up front instead of being handed to yt-dlp.
var remoteVideoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^https?://(www\.|m\.)?youtube\.com/(watch\?v=|shorts/|live/)[\w-]+`),
	regexp.MustCompile(`^https?://youtu\.be/[\w-]+`),
	regexp.MustCompile(`^https?://(www\.)?vimeo\.com/\d+`),
	regexp.MustCompile(`^https?://(www\.)?dailymotion\.com/video/[\w-]+`),
	regexp.MustCompile(`^https?://\S+\.(mp4|webm|mkv|mov|mp3|m4a|wav|flac|ogg)(\?\S*)?$`),
}

func isRemoteVideoURL(url string) bool {
	url = strings.TrimSpace(url)
	for _, re := range remoteVideoPatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// normalizeRemote downloads the audio track of a remote video and re-encodes
// it into the canonical format. Single attempt, no retries.
func (n *implNormalizer) normalizeRemote(ctx context.Context, url string) (*domain.NormalizedAudio, error) {
	if !isRemoteVideoURL(url) {
		return nil, domain.NewError(domain.KindInvalidSourceURL, "URL is not valid: %s", url)
	}

	downloadPath := n.tempPath("download")
	n.logger.Info(ctx, "Downloading audio from %s", url)

	args := []string{
		"--no-playlist",
		"-x",
		"--audio-format", "wav",
		"-o", downloadPath,
		url,
	}
	if _, err := n.executor.Execute(ctx, n.cfg.Downloader.BinaryPath, args...); err != nil {
		os.Remove(downloadPath)
		if ctx.Err() != nil {
			return nil, domain.WrapError(domain.KindInterrupted, ctx.Err(), "download %s", url)
		}
		return nil, domain.WrapError(domain.KindDownloadFailed, err, "download %s", url)
	}
	defer os.Remove(downloadPath)

	// The extracted track may still be stereo or at a different sample
	// rate, so it goes through the same canonical re-encode as a file.
	outPath := n.tempPath(url)
	if _, err := n.executor.Execute(ctx, "ffmpeg", n.encodeArgs(downloadPath, outPath)...); err != nil {
		os.Remove(outPath)
		if ctx.Err() != nil {
			return nil, domain.WrapError(domain.KindInterrupted, ctx.Err(), "normalize download %s", url)
		}
		return nil, domain.WrapError(domain.KindDownloadFailed, err, "re-encode downloaded audio for %s", url)
	}

	duration := n.probeDuration(ctx, outPath)
	n.logger.Info(ctx, "Downloaded and normalized %s (duration %s)", url, duration)

	return n.newArtifact(outPath, duration), nil
}
