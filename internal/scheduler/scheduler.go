package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"commissions/internal/config"
	"commissions/pkg/logger"
	"commissions/pkg/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

// Trigger enqueues an immediate run.
//
//go:generate mockgen -package mockscheduler -destination=mock/mockscheduler.go commissions/internal/scheduler Trigger
type Trigger interface {
	// RunNow enqueues a run. It returns false when a run is already queued or
	// running and the request collapsed into it.
	RunNow(ctx context.Context) (bool, error)
}

// Options configure the scheduler.
type Options struct {
	Advancer AdvancerOptions

	// Enabled registers the periodic job. Manual triggers work either way.
	Enabled bool
	// Interval is the period between runs. A run also happens at start.
	Interval time.Duration
	// MaxAttempts is the number of times a failed run is retried.
	MaxAttempts int
	// RunTimeout bounds a single run.
	RunTimeout time.Duration
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Advancer: AdvancerOptions{
			StalledAfterMonths: cfg.Scheduler.StalledAfterMonths,
			BatchSize:          cfg.Scheduler.BatchSize,
		},
		Enabled:     cfg.Scheduler.Enabled,
		Interval:    cfg.Scheduler.Interval,
		MaxAttempts: cfg.Scheduler.MaxAttempts,
		RunTimeout:  cfg.Scheduler.RunTimeout,
		MaxWorkers:  cfg.Worker.MaxWorkers,
	}
}

// Scheduler owns the River client that executes advancing runs, both on its
// periodic schedule and on demand.
type Scheduler struct {
	client  *river.Client[pgx.Tx]
	storage storage.JobStorage
	options Options
}

// New builds the River client running the advance worker on dbPool. Manual
// runs are enqueued through jobs so they share the unique job guard.
func New(ctx context.Context,
	dbPool *pgxpool.Pool,
	st storage.Storage,
	options Options) (*Scheduler, error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewAdvanceWorker(NewAdvancer(st, options.Advancer), options.RunTimeout))

	args := AdvanceJobArgs{maxAttempts: options.MaxAttempts}
	var periodicJobs []*river.PeriodicJob
	if options.Enabled {
		periodicJobs = append(periodicJobs, river.NewPeriodicJob(
			river.PeriodicInterval(options.Interval),
			func() (river.JobArgs, *river.InsertOpts) {
				return args, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		))
	}

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	client, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return &Scheduler{
		client:  client,
		storage: st,
		options: options,
	}, nil
}

// Client exposes the underlying River client, e.g. for the queue dashboard.
func (s *Scheduler) Client() *river.Client[pgx.Tx] {
	return s.client
}

// Start starts processing jobs. With the periodic job enabled, the first run
// is enqueued right away.
func (s *Scheduler) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("could not start river queue client: %w", err)
	}
	logger.Info(ctx, "scheduler started",
		zap.Bool("periodic", s.options.Enabled),
		zap.Duration("interval", s.options.Interval))

	return nil
}

// Stop waits for running jobs to finish until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("could not stop river queue client: %w", err)
	}

	return nil
}

// RunNow enqueues an immediate run.
func (s *Scheduler) RunNow(ctx context.Context) (bool, error) {
	return RunNow(ctx, s.storage, s.options.MaxAttempts)
}

// RunNow enqueues an advancing run through jobs.
func RunNow(ctx context.Context, jobs storage.JobStorage, maxAttempts int) (bool, error) {
	added, err := jobs.AddJob(ctx, AdvanceJobArgs{maxAttempts: maxAttempts}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue scheduler run: %w", err)
	}
	if !added {
		logger.Info(ctx, "scheduler run already pending")
	}

	return added, nil
}
