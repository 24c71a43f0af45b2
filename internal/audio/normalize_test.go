package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

// fakeExecutor simulates the external binaries: ffmpeg "writes" its output
// file, ffprobe reports a fixed duration.
type fakeExecutor struct {
	failWith  error
	onFFmpeg  func(args []string) error
	blockCtx  bool
	wroteSize int
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	switch name {
	case "ffprobe":
		return "2.0\n", nil
	default:
		if f.failWith != nil {
			return "", f.failWith
		}
		if f.onFFmpeg != nil {
			if err := f.onFFmpeg(args); err != nil {
				return "", err
			}
		}
		out := args[len(args)-1]
		size := f.wroteSize
		if size == 0 {
			size = 1024
		}
		if err := os.WriteFile(out, make([]byte, size), 0644); err != nil {
			return "", err
		}
		if f.blockCtx {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "", nil
	}
}

func newTestNormalizer(t *testing.T, exec *fakeExecutor) Normalizer {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	return New(cfg, exec, logger.NewNop())
}

func TestNormalizeMissingFile(t *testing.T) {
	n := newTestNormalizer(t, &fakeExecutor{})

	_, err := n.Normalize(context.Background(), domain.LocalFile("does/not/exist.wav"))
	if err == nil {
		t.Fatal("Normalize() should fail for a missing file")
	}
	if !domain.IsKind(err, domain.KindInputNotFound) {
		t.Errorf("error kind = %v, want input_not_found", domain.KindOf(err))
	}
}

func TestNormalizeLocalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "lecture.mp3")
	if err := os.WriteFile(src, []byte("fake audio"), 0644); err != nil {
		t.Fatal(err)
	}

	n := newTestNormalizer(t, &fakeExecutor{})
	art, err := n.Normalize(context.Background(), domain.LocalFile(src))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if _, err := os.Stat(art.Path); err != nil {
		t.Errorf("normalized artifact missing: %v", err)
	}
	if art.SampleRate != 16000 || art.Channels != 1 {
		t.Errorf("artifact encoding = %d Hz / %d ch, want 16000 / 1", art.SampleRate, art.Channels)
	}
	if art.Duration != 2*time.Second {
		t.Errorf("duration = %v, want 2s", art.Duration)
	}

	if err := art.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(art.Path); !os.IsNotExist(err) {
		t.Error("Release() should delete the artifact")
	}
}

func TestNormalizeReleaseKeepsRetainedAudio(t *testing.T) {
	src := filepath.Join(t.TempDir(), "lecture.wav")
	if err := os.WriteFile(src, []byte("fake audio"), 0644); err != nil {
		t.Fatal(err)
	}

	n := newTestNormalizer(t, &fakeExecutor{})
	art, err := n.Normalize(context.Background(), domain.LocalFile(src))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	art.Keep = true
	if err := art.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(art.Path); err != nil {
		t.Error("Release() should keep a retained artifact")
	}
	os.Remove(art.Path)
}

func TestNormalizeInvalidURL(t *testing.T) {
	n := newTestNormalizer(t, &fakeExecutor{})

	for _, url := range []string{
		"not-a-url",
		"ftp://example.com/video.mp4",
		"https://example.com/page",
		"javascript:alert(1)",
	} {
		_, err := n.Normalize(context.Background(), domain.RemoteURL(url))
		if err == nil {
			t.Errorf("Normalize(%q) should fail", url)
			continue
		}
		if !domain.IsKind(err, domain.KindInvalidSourceURL) {
			t.Errorf("Normalize(%q) kind = %v, want invalid_source_url", url, domain.KindOf(err))
		}
	}
}

func TestIsRemoteVideoURL(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://youtube.com/shorts/abc123",
		"https://vimeo.com/123456789",
		"https://example.com/lectures/intro.mp4",
		"http://cdn.example.org/audio.mp3?token=x",
	}
	for _, url := range valid {
		if !isRemoteVideoURL(url) {
			t.Errorf("isRemoteVideoURL(%q) = false, want true", url)
		}
	}

	invalid := []string{
		"",
		"youtube.com/watch?v=abc",
		"https://example.com/",
		"file:///etc/passwd",
	}
	for _, url := range invalid {
		if isRemoteVideoURL(url) {
			t.Errorf("isRemoteVideoURL(%q) = true, want false", url)
		}
	}
}

func TestNormalizeDownloadFailed(t *testing.T) {
	n := newTestNormalizer(t, &fakeExecutor{failWith: errors.New("network unreachable")})

	_, err := n.Normalize(context.Background(), domain.RemoteURL("https://youtu.be/dQw4w9WgXcQ"))
	if err == nil {
		t.Fatal("Normalize() should fail when the download fails")
	}
	if !domain.IsKind(err, domain.KindDownloadFailed) {
		t.Errorf("error kind = %v, want download_failed", domain.KindOf(err))
	}
}

func TestNormalizeMicrophoneTruncatedCapture(t *testing.T) {
	// The fake "recording" writes audio then blocks until cancelled, like
	// ffmpeg killed mid-capture leaving a partial file behind.
	exec := &fakeExecutor{blockCtx: true}
	n := newTestNormalizer(t, exec)

	stop := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(stop)
	}()

	art, err := n.Normalize(context.Background(), domain.MicrophoneCapture(10*time.Second, stop))
	if err != nil {
		t.Fatalf("Normalize() error = %v, want truncated capture", err)
	}
	if _, statErr := os.Stat(art.Path); statErr != nil {
		t.Errorf("truncated capture artifact missing: %v", statErr)
	}
	art.Release()
}

func TestNormalizeMicrophoneNoAudioCaptured(t *testing.T) {
	// Capture dies instantly with an empty file on disk.
	exec := &fakeExecutor{blockCtx: true, wroteSize: 10}
	n := newTestNormalizer(t, exec)

	stop := make(chan struct{})
	close(stop)

	_, err := n.Normalize(context.Background(), domain.MicrophoneCapture(10*time.Second, stop))
	if err == nil {
		t.Fatal("Normalize() should fail when nothing was captured")
	}
	if !domain.IsKind(err, domain.KindNoAudioCaptured) {
		t.Errorf("error kind = %v, want no_audio_captured", domain.KindOf(err))
	}
}

func TestNormalizeMicrophoneDeviceUnavailable(t *testing.T) {
	exec := &fakeExecutor{failWith: errors.New("ffmpeg: cannot open audio device")}
	n := newTestNormalizer(t, exec)

	_, err := n.Normalize(context.Background(), domain.MicrophoneCapture(5*time.Second, nil))
	if err == nil {
		t.Fatal("Normalize() should fail without a capture device")
	}
	if !domain.IsKind(err, domain.KindDeviceUnavailable) {
		t.Errorf("error kind = %v, want device_unavailable", domain.KindOf(err))
	}
}

func TestTempPathCollisionFree(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	n := New(cfg, &fakeExecutor{}, logger.NewNop()).(*implNormalizer)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := n.tempPath("lecture.wav")
		if seen[p] {
			t.Fatalf("tempPath produced a duplicate: %s", p)
		}
		seen[p] = true
	}
}
