package pipeline

import (
	"github.com/nguyentantai21042004/noteflow/internal/audio"
	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/formatter"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
	"github.com/nguyentantai21042004/noteflow/internal/notes"
	"github.com/nguyentantai21042004/noteflow/internal/transcriber"
)

type implOrchestrator struct {
	cfg         *config.Config
	normalizer  audio.Normalizer
	transcriber transcriber.Transcriber
	keypoints   notes.KeypointExtractor
	summarizer  notes.Summarizer
	quiz        notes.QuizGenerator
	formatter   formatter.Formatter
	logger      logger.Logger
}

// New creates a new Orchestrator instance
func New(
	cfg *config.Config,
	normalizer audio.Normalizer,
	trans transcriber.Transcriber,
	keypoints notes.KeypointExtractor,
	summarizer notes.Summarizer,
	quiz notes.QuizGenerator,
	form formatter.Formatter,
	log logger.Logger,
) Orchestrator {
	return &implOrchestrator{
		cfg:         cfg,
		normalizer:  normalizer,
		transcriber: trans,
		keypoints:   keypoints,
		summarizer:  summarizer,
		quiz:        quiz,
		formatter:   form,
		logger:      log,
	}
}
