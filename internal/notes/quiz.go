package notes

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

type implQuiz struct {
	logger logger.Logger
}

// NewQuizGenerator creates the sentence-based quiz generator.
func NewQuizGenerator(log logger.Logger) QuizGenerator {
	return &implQuiz{logger: log}
}

// Generate turns leading statements into comprehension prompts, capped at
// maxQuestions. A non-positive cap yields no questions regardless of input.
func (g *implQuiz) Generate(ctx context.Context, transcript domain.Transcript, maxQuestions int) ([]domain.QuizQuestion, error) {
	if maxQuestions <= 0 {
		return []domain.QuizQuestion{}, nil
	}

	sentences := splitSentences(transcript.Text)
	if len(sentences) > maxQuestions {
		sentences = sentences[:maxQuestions]
	}

	questions := make([]domain.QuizQuestion, 0, len(sentences))
	for _, s := range sentences {
		questions = append(questions, domain.QuizQuestion{
			Prompt: fmt.Sprintf("What is: %s?", s.text),
		})
	}

	g.logger.Debug(ctx, "Generated %d quiz questions (cap %d)", len(questions), maxQuestions)
	return questions, nil
}
