package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// minTranscriptChars is the pipeline-level floor below which a transcript is
// rejected as EmptyTranscript. The transcription stage itself may return
// less; the check belongs to the orchestrator.
const minTranscriptChars = 10

// Run executes the full pipeline for one source. It always returns a
// structured result, never panics across this boundary, and releases the
// normalized audio artifact on every path.
func (o *implOrchestrator) Run(ctx context.Context, source domain.AudioSource, params RunParams) domain.PipelineRunResult {
	start := time.Now()
	desc := source.Describe()

	o.logger.Info(ctx, "Starting pipeline run for %s", desc)

	result, err := o.execute(ctx, source, params)
	if err != nil {
		o.logger.Error(ctx, "Run failed for %s: %v", desc, err)
		return domain.Failed(desc, time.Since(start), err)
	}

	result.Source = desc
	result.Elapsed = time.Since(start)
	o.logger.Info(ctx, "Run completed for %s in %s -> %s", desc, result.Elapsed, result.OutputPath)
	return result
}

func (o *implOrchestrator) execute(ctx context.Context, source domain.AudioSource, params RunParams) (domain.PipelineRunResult, error) {
	run := newRunTracker(o.logger)

	run.to(ctx, domain.StateNormalizing)
	art, err := o.normalizer.Normalize(ctx, source)
	if err != nil {
		run.fail(ctx)
		return domain.PipelineRunResult{}, err
	}

	reachedTranscribing := false
	defer func() {
		// Cleanup is unconditional. Retention only applies once the run
		// made it to the transcribing stage.
		art.Keep = params.KeepAudio && reachedTranscribing
		if releaseErr := art.Release(); releaseErr != nil {
			o.logger.Warn(ctx, "Failed to release audio artifact: %v", releaseErr)
		}
	}()

	run.to(ctx, domain.StateTranscribing)
	reachedTranscribing = true
	transcript, err := o.transcriber.Transcribe(ctx, art, params.Language)
	if err != nil {
		run.fail(ctx)
		return domain.PipelineRunResult{}, err
	}

	if chars := utf8.RuneCountInString(strings.TrimSpace(transcript.Text)); chars < minTranscriptChars {
		run.fail(ctx)
		return domain.PipelineRunResult{}, domain.NewError(domain.KindEmptyTranscript,
			"transcript too short (%d characters, need %d)", chars, minTranscriptChars)
	}

	run.to(ctx, domain.StateExtracting)
	keyPoints, summary, quiz, err := o.extractAll(ctx, transcript, params)
	if err != nil {
		run.fail(ctx)
		return domain.PipelineRunResult{}, err
	}

	run.to(ctx, domain.StateFormatting)
	doc := domain.NoteDocument{
		Subject:     params.Subject,
		Source:      source.Describe(),
		GeneratedAt: time.Now(),
		Format:      params.Format,
		Transcript:  transcript,
		KeyPoints:   keyPoints,
		Summary:     summary,
		Quiz:        quiz,
	}
	rendered, err := o.formatter.Render(doc, params.Format)
	if err != nil {
		run.fail(ctx)
		return domain.PipelineRunResult{}, err
	}

	run.to(ctx, domain.StateSaving)
	outPath := params.OutputPath
	if outPath == "" {
		outPath = o.defaultOutputPath(source, params)
	}
	if err := writeDocument(outPath, rendered); err != nil {
		run.fail(ctx)
		return domain.PipelineRunResult{}, err
	}

	run.to(ctx, domain.StateDone)
	return domain.PipelineRunResult{
		Status:          domain.StatusSuccess,
		OutputPath:      outPath,
		TranscriptChars: utf8.RuneCountInString(transcript.Text),
		KeyPointCount:   len(keyPoints),
		QuizCount:       len(quiz),
	}, nil
}

// extractAll runs the three transcript-derived stages as a fork-join. They
// only read the immutable transcript, so they are safe to dispatch
// concurrently; the first failure cancels the rest and fails the run.
func (o *implOrchestrator) extractAll(ctx context.Context, transcript domain.Transcript, params RunParams) (domain.KeyPointSet, domain.Summary, []domain.QuizQuestion, error) {
	var (
		keyPoints domain.KeyPointSet
		summary   domain.Summary
		quiz      []domain.QuizQuestion
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		points, err := o.keypoints.Extract(gctx, transcript, params.Subject)
		if err != nil {
			return classify(err, domain.KindExtractionError, "key-point extraction")
		}
		keyPoints = points
		return nil
	})

	g.Go(func() error {
		s, err := o.summarizer.Summarize(gctx, transcript, params.Detail)
		if err != nil {
			return classify(err, domain.KindSummarizationError, "summarization")
		}
		summary = s
		return nil
	})

	g.Go(func() error {
		q, err := o.quiz.Generate(gctx, transcript, params.MaxQuestions)
		if err != nil {
			return classify(err, domain.KindExtractionError, "quiz generation")
		}
		quiz = q
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, domain.Summary{}, nil, err
	}
	return keyPoints, summary, quiz, nil
}

// classify keeps an already-classified stage error as is and wraps anything
// else under the fallback kind.
func classify(err error, fallback domain.Kind, stage string) error {
	if kind := domain.KindOf(err); kind != domain.KindInternal {
		return err
	}
	return domain.WrapError(fallback, err, "%s failed", stage)
}

func writeDocument(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.WrapError(domain.KindOutputWriteError, err, "create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.WrapError(domain.KindOutputWriteError, err, "write %s", path)
	}
	return nil
}
