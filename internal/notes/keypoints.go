package notes

import (
	"context"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

type implKeypoints struct {
	logger logger.Logger
}

// NewKeypointExtractor creates the sentence-based extractor.
func NewKeypointExtractor(log logger.Logger) KeypointExtractor {
	return &implKeypoints{logger: log}
}

// Extract splits the transcript into statements in appearance order. The
// only legitimate empty result is a transcript that is empty after
// whitespace normalization.
func (e *implKeypoints) Extract(ctx context.Context, transcript domain.Transcript, subject string) (domain.KeyPointSet, error) {
	sentences := splitSentences(transcript.Text)
	if len(sentences) == 0 {
		return domain.KeyPointSet{}, nil
	}

	points := make(domain.KeyPointSet, 0, len(sentences))
	for _, s := range sentences {
		points = append(points, s.text)
	}

	e.logger.Debug(ctx, "Extracted %d key points for subject %q", len(points), subject)
	return points, nil
}
