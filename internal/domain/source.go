package domain

import (
	"fmt"
	"os"
	"time"
)

// SourceKind discriminates the supported audio inputs.
type SourceKind string

const (
	SourceLocalFile  SourceKind = "file"
	SourceMicrophone SourceKind = "microphone"
	SourceRemoteURL  SourceKind = "url"
)

// AudioSource is a tagged union over the three input modalities. The CLI
// boundary constructs exactly one variant; the normalizer dispatches on Kind.
type AudioSource struct {
	Kind SourceKind

	// Path is set for SourceLocalFile.
	Path string

	// Duration is the requested capture length for SourceMicrophone.
	// Stop, when non-nil, ends the capture early; whatever was recorded up
	// to that point is kept.
	Duration time.Duration
	Stop     <-chan struct{}

	// URL is set for SourceRemoteURL.
	URL string
}

// LocalFile builds a file-backed audio source.
func LocalFile(path string) AudioSource {
	return AudioSource{Kind: SourceLocalFile, Path: path}
}

// MicrophoneCapture builds a microphone capture request. stop may be nil.
func MicrophoneCapture(duration time.Duration, stop <-chan struct{}) AudioSource {
	return AudioSource{Kind: SourceMicrophone, Duration: duration, Stop: stop}
}

// RemoteURL builds a remote-video audio source.
func RemoteURL(url string) AudioSource {
	return AudioSource{Kind: SourceRemoteURL, URL: url}
}

// Describe returns a short human-readable identity for run results and logs.
func (s AudioSource) Describe() string {
	switch s.Kind {
	case SourceLocalFile:
		return s.Path
	case SourceMicrophone:
		return fmt.Sprintf("microphone (%s)", s.Duration)
	case SourceRemoteURL:
		return s.URL
	default:
		return string(s.Kind)
	}
}

// NormalizedAudio is the single canonical audio artifact produced by the
// normalizer: a local file in the pipeline's canonical encoding. The
// orchestrator owns it and must call Release exactly once per run.
type NormalizedAudio struct {
	Path       string
	Duration   time.Duration
	SampleRate int
	Channels   int

	// Keep suppresses deletion on Release (user requested audio retention).
	Keep bool
}

// Release deletes the temporary artifact unless retention was requested.
// Safe to call when the file is already gone.
func (a *NormalizedAudio) Release() error {
	if a == nil || a.Path == "" || a.Keep {
		return nil
	}
	if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("release normalized audio: %w", err)
	}
	return nil
}
