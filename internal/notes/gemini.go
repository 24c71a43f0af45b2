package notes

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

const geminiPrompt = `You are an expert lecture analyst. Write a %s summary of the lecture transcript below, in the same language as the transcript.

Requirements:
- Start with a one-sentence overview of the lecture topic
- Cover the main ideas in the order they appear
- Keep technical terms as spoken
- Plain prose only, no markdown

Transcript:
---
%s
---`

type implGemini struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	// mu guards currentKey; one summarizer is shared by all batch workers.
	mu         sync.Mutex
	currentKey int
}

// NewGeminiSummarizer creates a Summarizer that calls Gemini, rotating
// through the supplied API keys on quota errors. Responses are clamped to
// the transcript length; the minimal <= standard <= detailed length
// ordering is asked of the model in the prompt rather than guaranteed by
// construction, unlike the extractive engine.
func NewGeminiSummarizer(apiKeys []string, model string, log logger.Logger) Summarizer {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

func (s *implGemini) Summarize(ctx context.Context, transcript domain.Transcript, detail domain.DetailLevel) (domain.Summary, error) {
	if strings.TrimSpace(transcript.Text) == "" {
		return domain.Summary{Detail: detail}, nil
	}

	text, err := s.callGemini(ctx, fmt.Sprintf(geminiPrompt, detailInstruction(detail), transcript.Text))
	if err != nil {
		return domain.Summary{}, domain.WrapError(domain.KindSummarizationError, err, "gemini summarize")
	}

	text = strings.TrimSpace(text)
	// The contract caps summaries at the transcript length; a chatty model
	// response gets cut at the last whole sentence that fits.
	if len(text) > len(transcript.Text) {
		text = truncateToSentence(text, len(transcript.Text))
	}

	return domain.Summary{Text: text, Detail: detail}, nil
}

func detailInstruction(detail domain.DetailLevel) string {
	switch detail {
	case domain.DetailMinimal:
		return "very short (two or three sentences)"
	case domain.DetailDetailed:
		return "thorough, section-by-section"
	default:
		return "concise"
	}
}

// truncateToSentence cuts text down to at most limit bytes, ending at the
// last sentence terminator that fits. Cuts land on rune boundaries, so a
// multi-byte terminator like the Bangla danda is never split.
func truncateToSentence(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	cut := text[:limit]
	for len(cut) > 0 {
		if r, size := utf8.DecodeLastRuneInString(cut); r == utf8.RuneError && size <= 1 {
			cut = cut[:len(cut)-1]
			continue
		}
		break
	}

	rest := cut
	for len(rest) > 0 {
		r, size := utf8.DecodeLastRuneInString(rest)
		if isTerminator(r) {
			return strings.TrimSpace(rest)
		}
		rest = rest[:len(rest)-size]
	}
	return strings.TrimSpace(cut)
}

// callGemini sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (s *implGemini) callGemini(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	var lastErr error
	for range attempts {
		key, keyIdx := s.keyForAttempt()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGemini) keyForAttempt() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKeys[s.currentKey], s.currentKey
}

func (s *implGemini) rotateKey() {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	s.mu.Unlock()
}
