package audio

import (
	"github.com/nguyentantai21042004/noteflow/internal/config"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
	"github.com/nguyentantai21042004/noteflow/pkg/executor"
)

type implNormalizer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Normalizer instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
