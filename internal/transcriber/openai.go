package transcriber

import (
	"context"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

type implOpenAI struct {
	client *openai.Client
	model  string
	logger logger.Logger
}

// Transcribe sends the normalized audio to the OpenAI transcription API.
// Verbose JSON output carries the language the engine actually detected.
func (t *implOpenAI) Transcribe(ctx context.Context, audio *domain.NormalizedAudio, hint domain.LanguageHint) (domain.Transcript, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: audio.Path,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	if hint != domain.LanguageAutoDetect {
		req.Language = string(hint)
	}

	t.logger.Info(ctx, "Transcribing %s via OpenAI (%s)", audio.Path, t.model)

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Transcript{}, domain.WrapError(domain.KindInterrupted, ctx.Err(), "transcription interrupted")
		}
		return domain.Transcript{}, domain.WrapError(domain.KindTranscriptionError, err, "openai transcribe %s", audio.Path)
	}

	resolved := hint
	if hint == domain.LanguageAutoDetect {
		resolved = domain.LanguageEnglish
		if lang := normalizeLanguage(resp.Language); lang != "" {
			resolved = lang
		}
	}

	text := strings.TrimSpace(resp.Text)
	t.logger.Info(ctx, "Transcription completed (%d characters, language %s)", len(text), resolved)

	return domain.Transcript{Text: text, Language: resolved}, nil
}

// normalizeLanguage maps the API's language names ("english", "bengali") to
// the two-letter hints used everywhere else.
func normalizeLanguage(name string) domain.LanguageHint {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english", "en":
		return domain.LanguageEnglish
	case "bengali", "bangla", "bn":
		return domain.LanguageBangla
	case "":
		return ""
	default:
		if len(name) == 2 {
			return domain.LanguageHint(strings.ToLower(name))
		}
		return ""
	}
}
