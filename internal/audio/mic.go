package audio

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// wavHeaderSize is the canonical RIFF header length; a capture file at or
// below this size holds no samples.
const wavHeaderSize = 44

// normalizeMicrophone records from the default input device for the
// requested duration. Closing the source's Stop channel (or cancelling ctx)
// ends the capture early; a truncated capture with audio in it is returned
// as a valid artifact, never discarded.
func (n *implNormalizer) normalizeMicrophone(ctx context.Context, src domain.AudioSource) (*domain.NormalizedAudio, error) {
	if src.Duration <= 0 {
		return nil, domain.NewError(domain.KindNoAudioCaptured, "capture duration must be positive, got %s", src.Duration)
	}

	outPath := n.tempPath("capture")
	n.logger.Info(ctx, "Recording %s from the default input device", src.Duration)

	capCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stopped := make(chan struct{})
	if src.Stop != nil {
		go func() {
			select {
			case <-src.Stop:
				n.logger.Info(capCtx, "Capture stop requested, keeping partial recording")
				close(stopped)
				cancel()
			case <-capCtx.Done():
			}
		}()
	}

	format, device := n.captureDevice()
	args := []string{
		"-f", format,
		"-i", device,
		"-t", fmt.Sprintf("%.0f", src.Duration.Seconds()),
		"-ar", fmt.Sprintf("%d", n.cfg.FFmpeg.SampleRate),
		"-ac", fmt.Sprintf("%d", n.cfg.FFmpeg.Channels),
		"-c:a", n.cfg.FFmpeg.AudioCodec,
		"-y",
		outPath,
	}

	_, err := n.executor.Execute(capCtx, "ffmpeg", args...)
	if err != nil {
		interrupted := false
		select {
		case <-stopped:
			interrupted = true
		default:
			interrupted = ctx.Err() != nil
		}

		if interrupted && fileHasAudio(outPath) {
			duration := n.probeDuration(context.WithoutCancel(ctx), outPath)
			n.logger.Info(ctx, "Capture truncated, keeping %s of audio", duration)
			return n.newArtifact(outPath, duration), nil
		}

		os.Remove(outPath)
		switch {
		case isDeviceError(err):
			return nil, domain.WrapError(domain.KindDeviceUnavailable, err, "no capture device available")
		case interrupted:
			return nil, domain.NewError(domain.KindNoAudioCaptured, "capture interrupted before any audio was recorded")
		default:
			return nil, domain.WrapError(domain.KindNoAudioCaptured, err, "microphone capture failed")
		}
	}

	if !fileHasAudio(outPath) {
		os.Remove(outPath)
		return nil, domain.NewError(domain.KindNoAudioCaptured, "capture produced no audio")
	}

	duration := n.probeDuration(ctx, outPath)
	return n.newArtifact(outPath, duration), nil
}

// captureDevice picks the ffmpeg input format and device for the host OS,
// unless the config names a device explicitly.
func (n *implNormalizer) captureDevice() (format, device string) {
	device = n.cfg.FFmpeg.MicDevice
	switch runtime.GOOS {
	case "darwin":
		if device == "" {
			device = ":0"
		}
		return "avfoundation", device
	case "windows":
		if device == "" {
			device = "audio=default"
		}
		return "dshow", device
	default:
		if device == "" {
			device = "default"
		}
		return "pulse", device
	}
}

func fileHasAudio(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > wavHeaderSize
}

// isDeviceError sniffs ffmpeg stderr (carried inside the executor error) for
// missing-device failures.
func isDeviceError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"no such audio device",
		"cannot open audio device",
		"audio open error",
		"device or resource busy",
		"connection refused",
		"no such device",
		"could not find audio only device",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
