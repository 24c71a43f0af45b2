package transcriber

import (
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
	"github.com/nguyentantai21042004/noteflow/pkg/executor"
)

// New creates the transcription engine selected by the config: a local
// whisper.cpp binary, or the OpenAI transcription API.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Engine {
	case "whisper":
		return &implWhisper{cfg: cfg, executor: exec, logger: log}, nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("transcriber engine openai requires OPENAI_API_KEY")
		}
		return &implOpenAI{
			client: openai.NewClient(apiKey),
			model:  cfg.Transcriber.OpenAIModel,
			logger: log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown transcriber engine %q", cfg.Transcriber.Engine)
	}
}
