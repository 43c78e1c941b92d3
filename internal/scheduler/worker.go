package scheduler

import (
	"context"
	"fmt"
	"time"

	"commissions/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AdvanceWorker is a River worker executing one Advancer run per job.
// Per-placement failures are part of the report and never fail the job; only a
// failure to list placements is returned so River retries the run.
type AdvanceWorker struct {
	river.WorkerDefaults[AdvanceJobArgs]

	advancer *Advancer
	timeout  time.Duration
}

// NewAdvanceWorker constructs an AdvanceWorker bounded by timeout. A zero
// timeout falls back to River's default.
func NewAdvanceWorker(advancer *Advancer, timeout time.Duration) *AdvanceWorker {
	return &AdvanceWorker{
		advancer: advancer,
		timeout:  timeout,
	}
}

// Timeout bounds a single run.
func (w *AdvanceWorker) Timeout(*river.Job[AdvanceJobArgs]) time.Duration {
	return w.timeout
}

// Work runs the advancer once.
func (w *AdvanceWorker) Work(ctx context.Context, job *river.Job[AdvanceJobArgs]) error {
	ctx = logger.WithFields(logger.Named(ctx, "scheduler"), zap.Int64("jobID", job.ID), zap.Int("attempt", job.Attempt))

	report, err := w.advancer.Run(ctx)
	if err != nil {
		logger.Error(ctx, "error in advancing stalled placements", zap.Error(err))

		return fmt.Errorf("could not advance stalled placements: %w", err)
	}
	if report.Failed > 0 {
		logger.Warn(ctx, "some placements could not be advanced", zap.Int("failed", report.Failed))
	}

	return nil
}
