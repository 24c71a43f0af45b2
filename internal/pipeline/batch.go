package pipeline

import (
	"context"
	"sync"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
)

// RunBatch executes Run once per source under a bounded worker count.
// Results come back in input order, one per source, and a failing item never
// short-circuits the items after it.
func (o *implOrchestrator) RunBatch(ctx context.Context, sources []domain.AudioSource, params RunParams) []domain.PipelineRunResult {
	results := make([]domain.PipelineRunResult, len(sources))
	if len(sources) == 0 {
		return results
	}

	// Batch items derive their own output paths; a shared override would
	// make the workers clobber each other.
	params.OutputPath = ""

	sem := newSemaphore(o.cfg.Performance.MaxConcurrent)
	var wg sync.WaitGroup

	o.logger.Info(ctx, "Batch run over %d sources (max concurrent %d)", len(sources), o.cfg.Performance.MaxConcurrent)

	for i, src := range sources {
		if err := sem.acquire(ctx); err != nil {
			results[i] = domain.Failed(src.Describe(), 0,
				domain.WrapError(domain.KindInterrupted, err, "batch interrupted before item started"))
			continue
		}

		wg.Add(1)
		go func(idx int, source domain.AudioSource) {
			defer wg.Done()
			defer sem.release()
			results[idx] = o.Run(ctx, source, params)
		}(i, src)
	}

	wg.Wait()

	succeeded := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			succeeded++
		}
	}
	o.logger.Info(ctx, "Batch finished: %d/%d succeeded", succeeded, len(sources))

	return results
}

// semaphore implements a simple counting semaphore for limiting concurrency
type semaphore struct {
	ch chan struct{}
}

// newSemaphore creates a new semaphore with the given capacity
func newSemaphore(capacity int) *semaphore {
	if capacity <= 0 {
		capacity = 1
	}
	return &semaphore{
		ch: make(chan struct{}, capacity),
	}
}

// acquire acquires a semaphore slot, blocking if necessary
func (s *semaphore) acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// release releases a semaphore slot
func (s *semaphore) release() {
	<-s.ch
}
