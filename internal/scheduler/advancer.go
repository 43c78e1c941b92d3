package scheduler

import (
	"context"
	"fmt"
	"time"

	"commissions/pkg/domain"
	"commissions/pkg/logger"
	"commissions/pkg/metrics"
	"commissions/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "commissions/internal/scheduler"

var tracer = otel.Tracer(instrumentationName) //nolint: gochecknoglobals

// AdvancerOptions configure a single advancing run.
type AdvancerOptions struct {
	// StalledAfterMonths is how many calendar months a placement may stay Placed.
	StalledAfterMonths int
	// BatchSize is the number of placements loaded per query.
	BatchSize uint
	// Now is the clock runs are evaluated against. time.Now is used when nil.
	Now func() time.Time
}

// Report summarizes one run.
type Report struct {
	// Cutoff is the latest placement date that was considered stalled.
	Cutoff time.Time
	// Scanned is the number of candidate placements visited.
	Scanned int
	// Advanced is the number of placements moved to PaymentRequested.
	Advanced int
	// Approved is the number of Pending payment requests approved on the way.
	Approved int64
	// Failed is the number of placements whose save failed and were skipped.
	Failed int
}

// Advancer moves placements that stayed Placed for too long to
// PaymentRequested and approves their Pending payment requests.
type Advancer struct {
	storage storage.Storage
	options AdvancerOptions
	now     func() time.Time

	advanced metric.Int64Counter
	failed   metric.Int64Counter
	duration metric.Float64Histogram
}

// NewAdvancer creates an Advancer backed by the provided storage.
func NewAdvancer(storage storage.Storage, options AdvancerOptions) *Advancer {
	now := options.Now
	if now == nil {
		now = time.Now
	}
	if options.BatchSize == 0 {
		options.BatchSize = 100
	}
	meter := metrics.Meter(instrumentationName)

	return &Advancer{
		storage: storage,
		options: options,
		now:     now,
		advanced: metrics.MustInt64Counter(meter,
			"scheduler_placements_advanced",
			"Placements moved to payment requested by the scheduler."),
		failed: metrics.MustInt64Counter(meter,
			"scheduler_placements_failed",
			"Placements the scheduler could not advance."),
		duration: metrics.MustFloat64Histogram(meter,
			"scheduler_run_duration",
			"Duration of scheduler runs.",
			metrics.RunBuckets),
	}
}

// Cutoff returns the latest placement date considered stalled at now. It is a
// calendar date in UTC, StalledAfterMonths before today.
func (a *Advancer) Cutoff(now time.Time) time.Time {
	y, m, d := now.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, -a.options.StalledAfterMonths, 0)
}

// Run advances every stalled placement. Each placement is saved in its own
// transaction; a failing placement is logged, counted and skipped. An error is
// only returned when the candidate rows themselves cannot be listed.
func (a *Advancer) Run(ctx context.Context) (Report, error) {
	started := a.now()
	report := Report{Cutoff: a.Cutoff(started)}

	ctx, span := tracer.Start(ctx, "scheduler.Run",
		trace.WithAttributes(attribute.String("cutoff", report.Cutoff.Format(time.DateOnly))))
	defer span.End()
	defer func() {
		a.duration.Record(ctx, time.Since(started).Seconds())
	}()

	var after *domain.PlacementID
	for {
		batch, err := a.storage.PlacementsPlacedBefore(ctx,
			domain.PlacementStatusPlaced,
			report.Cutoff,
			after,
			a.options.BatchSize)
		if err != nil {
			span.RecordError(err)

			return report, fmt.Errorf("could not fetch stalled placements: %w", err)
		}

		for _, p := range batch {
			report.Scanned++
			advanced, approved, err := a.advance(ctx, p.ID, started)
			if err != nil {
				report.Failed++
				a.failed.Add(ctx, 1)
				logger.Error(ctx, "could not advance placement",
					zap.Stringer("placementID", p.ID),
					zap.Error(err))

				continue
			}
			if advanced {
				report.Advanced++
				report.Approved += approved
				a.advanced.Add(ctx, 1)
			}
		}

		if uint(len(batch)) < a.options.BatchSize {
			break
		}
		after = &batch[len(batch)-1].ID
	}

	span.SetAttributes(
		attribute.Int("advanced", report.Advanced),
		attribute.Int("failed", report.Failed))
	logger.Info(ctx, "advanced stalled placements",
		zap.Time("cutoff", report.Cutoff),
		zap.Int("scanned", report.Scanned),
		zap.Int("advanced", report.Advanced),
		zap.Int64("approved", report.Approved),
		zap.Int("failed", report.Failed))

	return report, nil
}

// advance moves one placement and approves its Pending requests. A placement
// that left Placed since it was listed is left alone.
func (a *Advancer) advance(ctx context.Context, id domain.PlacementID, at time.Time) (bool, int64, error) {
	var (
		advanced bool
		approved int64
	)
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		ok, err := tx.AdvancePlacementStatus(ctx, id,
			domain.PlacementStatusPlaced,
			domain.PlacementStatusPaymentRequested)
		if err != nil {
			return fmt.Errorf("could not advance placement status: %w", err)
		}
		if !ok {
			return nil
		}

		n, err := tx.ApprovePendingPaymentRequests(ctx, id, at)
		if err != nil {
			return fmt.Errorf("could not approve pending payment requests: %w", err)
		}
		advanced, approved = true, n

		return nil
	}); err != nil {
		return false, 0, err //nolint: wrapcheck
	}

	return advanced, approved, nil
}
