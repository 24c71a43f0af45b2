package transcriber

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
	"github.com/nguyentantai21042004/noteflow/pkg/executor"
)

type implWhisper struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// reDetectedLanguage matches the whisper.cpp auto-detection report line.
var reDetectedLanguage = regexp.MustCompile(`auto-detected language:\s*([a-z]{2})`)

// Transcribe runs the whisper.cpp binary against the normalized audio and
// reads back the text output it writes next to the audio file.
func (t *implWhisper) Transcribe(ctx context.Context, audio *domain.NormalizedAudio, hint domain.LanguageHint) (domain.Transcript, error) {
	outputPrefix := strings.TrimSuffix(audio.Path, filepath.Ext(audio.Path))

	lang := string(hint)
	if hint == domain.LanguageAutoDetect {
		lang = "auto"
	}

	t.logger.Info(ctx, "Transcribing %s (model %s, language %s, %d threads)",
		audio.Path, t.cfg.Whisper.ModelPath, lang, t.cfg.Whisper.Threads)

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audio.Path,
		"-otxt",
		"-l", lang,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}

	out, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Transcript{}, domain.WrapError(domain.KindInterrupted, ctx.Err(), "transcription interrupted")
		}
		return domain.Transcript{}, domain.WrapError(domain.KindTranscriptionError, err, "whisper transcribe %s", audio.Path)
	}

	txtPath := outputPrefix + ".txt"
	defer os.Remove(txtPath)

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return domain.Transcript{}, domain.WrapError(domain.KindTranscriptionError, err, "read whisper output %s", txtPath)
	}

	resolved := hint
	if hint == domain.LanguageAutoDetect {
		resolved = detectLanguage(out)
		t.logger.Debug(ctx, "Auto-detect resolved language to %s", resolved)
	}

	text := strings.TrimSpace(string(data))
	t.logger.Info(ctx, "Transcription completed (%d characters, language %s)", len(text), resolved)

	return domain.Transcript{Text: text, Language: resolved}, nil
}

// detectLanguage pulls the resolved language out of the engine output. The
// engine reports it on stderr; when the line is absent English is assumed.
func detectLanguage(engineOutput string) domain.LanguageHint {
	if m := reDetectedLanguage.FindStringSubmatch(engineOutput); m != nil {
		return domain.LanguageHint(m[1])
	}
	return domain.LanguageEnglish
}
