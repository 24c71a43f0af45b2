package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/noteflow/internal/domain"
	"github.com/nguyentantai21042004/noteflow/internal/logger"
)

// runTracker walks one run through the state machine and logs transitions.
// Each run owns its own tracker, so no locking is needed.
type runTracker struct {
	state  domain.RunState
	logger logger.Logger
}

func newRunTracker(log logger.Logger) *runTracker {
	return &runTracker{state: domain.StateStart, logger: log}
}

func (r *runTracker) to(ctx context.Context, next domain.RunState) {
	if !domain.ValidTransition(r.state, next) {
		// A skipped stage is a bug in the orchestrator, not a runtime
		// condition; log loudly but keep the run coherent.
		r.logger.Error(ctx, "Invalid run state transition: %s -> %s", r.state, next)
	}
	r.logger.Debug(ctx, "Run state: %s -> %s", r.state, next)
	r.state = next
}

func (r *runTracker) fail(ctx context.Context) {
	r.to(ctx, domain.StateFailed)
}
