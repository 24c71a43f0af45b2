package notes

import (
	"fmt"

	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

// NewSummarizer creates the summarization engine selected by the config.
// geminiKeys is only consulted for the gemini engine.
func NewSummarizer(cfg *config.Config, geminiKeys []string, log logger.Logger) (Summarizer, error) {
	switch cfg.Notes.SummaryEngine {
	case "extractive":
		return NewExtractiveSummarizer(log), nil
	case "gemini":
		if len(geminiKeys) == 0 {
			return nil, fmt.Errorf("summary engine gemini requires GEMINI_API_KEYS")
		}
		return NewGeminiSummarizer(geminiKeys, cfg.Gemini.Model, log), nil
	default:
		return nil, fmt.Errorf("unknown summary engine %q", cfg.Notes.SummaryEngine)
	}
}
