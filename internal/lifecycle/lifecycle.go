package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"commissions/internal/config"
	"commissions/pkg/commission"
	"commissions/pkg/domain"
	"commissions/pkg/logger"
	"commissions/pkg/metrics"
	"commissions/pkg/serrors"
	"commissions/pkg/storage"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "commissions/internal/lifecycle"

var tracer = otel.Tracer(instrumentationName) //nolint: gochecknoglobals

// Options configure the payment request lifecycle.
type Options struct {
	// Resolver configures how commissions are computed and rounded.
	Resolver commission.Options
	// Now is the clock used for transition timestamps and campaign windows.
	// time.Now is used when nil.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Resolver: commission.Options{
			RoundingPlaces: cfg.Commission.RoundingPlaces,
		},
	}
}

// lifecycle is the concrete implementation of the Lifecycle interface.
type lifecycle struct {
	storage  storage.Storage
	resolver *commission.Resolver
	now      func() time.Time

	outcomes    metric.Int64Counter
	transitions metric.Int64Counter
}

// New creates a Lifecycle backed by the provided storage.
func New(storage storage.Storage, options Options) Lifecycle {
	now := options.Now
	if now == nil {
		now = time.Now
	}
	meter := metrics.Meter(instrumentationName)

	return &lifecycle{
		storage:  storage,
		resolver: commission.New(options.Resolver),
		now:      now,
		outcomes: metrics.MustInt64Counter(meter,
			"commission_side_effects",
			"Commission side effects of placement updates by action."),
		transitions: metrics.MustInt64Counter(meter,
			"payment_request_transitions",
			"Payment request status transitions by target status."),
	}
}

// UpdatePlacement saves a staff edit of a placement and then, in a separate
// step, creates or recomputes its payment request. The second step can only
// report a failure through the returned Outcome.
func (l *lifecycle) UpdatePlacement(ctx context.Context,
	change PlacementChange) (*domain.Placement, Outcome, error) {
	ctx, span := tracer.Start(ctx, "lifecycle.UpdatePlacement",
		trace.WithAttributes(attribute.String("placement.id", change.ID.String())))
	defer span.End()
	ctx = logger.WithFields(logger.Named(ctx, "lifecycle"), zap.Stringer("placementID", change.ID))

	if err := change.validate(); err != nil {
		return nil, Outcome{}, err
	}

	var before, after *domain.Placement
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.PlacementByID(ctx, change.ID)
		if err != nil {
			return fmt.Errorf("could not fetch placement: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "placement not found")
		}
		if err := checkStatusChange(current.Status, change.Status); err != nil {
			return err
		}

		updated, err := tx.UpdatePlacement(ctx, change.ID, change.updates(*current, l.now()))
		if err != nil {
			return fmt.Errorf("could not save placement: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "placement not found")
		}
		before, after = current, updated

		return nil
	}); err != nil {
		span.RecordError(err)

		return nil, Outcome{}, fmt.Errorf("could not update placement: %w", err)
	}

	outcome := Outcome{Action: OutcomeNone}
	if commissionTriggered(*before, *after) {
		outcome = l.syncPaymentRequest(ctx, *after)
	}
	span.SetAttributes(attribute.String("commission.outcome", string(outcome.Action)))

	return after, outcome, nil
}

func (c PlacementChange) validate() error {
	if c.Status != nil {
		if !c.Status.Valid() {
			return serrors.With(serrors.ErrBadRequest, "unknown placement status %d", int(*c.Status))
		}
		if *c.Status == domain.PlacementStatusPaymentRequested {
			return serrors.With(serrors.ErrBadRequest, "status %s is only set by the payment scheduler", *c.Status)
		}
	}
	if c.Salary != nil && c.Salary.IsNegative() {
		return serrors.With(serrors.ErrBadRequest, "salary must not be negative")
	}

	return nil
}

func (c PlacementChange) updates(current domain.Placement, now time.Time) storage.PlacementUpdates {
	updates := storage.PlacementUpdates{
		Status:            c.Status,
		Salary:            c.Salary,
		ReferrerID:        c.ReferrerID,
		PlacedAt:          c.PlacedAt,
		ExpectedPaymentAt: c.ExpectedPaymentAt,
	}

	// entering Placed without a placement date stamps today
	entering := c.Status != nil && *c.Status == domain.PlacementStatusPlaced &&
		current.Status != domain.PlacementStatusPlaced
	if entering && c.PlacedAt == nil && current.PlacedAt == nil {
		today := dateOf(now)
		updates.PlacedAt = &today
	}

	return updates
}

func checkStatusChange(from domain.PlacementStatus, to *domain.PlacementStatus) error {
	if to == nil || *to == from {
		return nil
	}
	if *to < from {
		return serrors.With(serrors.ErrConflict, "placement cannot move back from %s to %s", from, *to)
	}

	return nil
}

func commissionTriggered(before, after domain.Placement) bool {
	if after.Status != domain.PlacementStatusPlaced {
		return false
	}

	return before.Status != domain.PlacementStatusPlaced ||
		before.SalaryChanged(after) ||
		before.ReferrerChanged(after)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// syncPaymentRequest runs the commission side effect of a placement update.
// It never returns an error; failures are logged and reported as OutcomeFailed.
func (l *lifecycle) syncPaymentRequest(ctx context.Context, p domain.Placement) Outcome {
	ctx, span := tracer.Start(ctx, "lifecycle.syncPaymentRequest")
	defer span.End()

	outcome, err := l.ensurePaymentRequest(ctx, p)
	if err != nil {
		span.RecordError(err)
		logger.Error(ctx, "could not apply commission to placement", zap.Error(err))
		outcome = Outcome{Action: OutcomeFailed, Err: err}
	} else {
		logger.Info(ctx, "commission applied to placement",
			zap.String("action", string(outcome.Action)),
			zap.String("rule", string(outcome.Rule)),
			zap.String("reason", outcome.Reason))
	}
	l.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("action", string(outcome.Action))))

	return outcome
}

func (l *lifecycle) ensurePaymentRequest(ctx context.Context, p domain.Placement) (Outcome, error) {
	if p.ReferrerID == nil {
		return skipped(nil, "placement has no collaborator referrer"), nil
	}
	if !p.HasPositiveSalary() {
		return skipped(nil, "placement has no positive salary"), nil
	}

	existing, err := l.storage.PaymentRequestByPlacementID(ctx, p.ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not fetch payment request: %w", err)
	}
	if existing != nil {
		return l.recompute(ctx, p, *existing)
	}

	return l.create(ctx, p)
}

func (l *lifecycle) create(ctx context.Context, p domain.Placement) (Outcome, error) {
	res, err := l.resolve(ctx, l.storage, p)
	if err != nil {
		return Outcome{}, err
	}

	stored, err := l.storage.StorePaymentRequest(ctx, domain.PaymentRequest{
		PlacementID: p.ID,
		ReferrerID:  *p.ReferrerID,
		Amount:      res.Amount,
		Status:      domain.PaymentRequestStatusPending,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		// a concurrent update created it first
		return skipped(nil, "payment request already exists"), nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("could not store payment request: %w", err)
	}

	return Outcome{Action: OutcomeCreated, PaymentRequest: stored, Rule: res.Rule}, nil
}

func (l *lifecycle) recompute(ctx context.Context,
	p domain.Placement,
	existing domain.PaymentRequest) (Outcome, error) {
	if existing.Status != domain.PaymentRequestStatusPending {
		return skipped(&existing, "payment request is "+existing.Status.String()), nil
	}

	res, err := l.resolve(ctx, l.storage, p)
	if err != nil {
		return Outcome{}, err
	}

	updated, err := l.storage.UpdatePendingPaymentRequest(ctx, existing.ID, *p.ReferrerID, res.Amount)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not update payment request: %w", err)
	}
	if updated == nil {
		return skipped(&existing, "payment request left pending concurrently"), nil
	}

	return Outcome{Action: OutcomeRecomputed, PaymentRequest: updated, Rule: res.Rule}, nil
}

func skipped(request *domain.PaymentRequest, reason string) Outcome {
	return Outcome{Action: OutcomeSkipped, PaymentRequest: request, Reason: reason}
}

// resolve loads the inputs of a placement's commission and resolves it.
func (l *lifecycle) resolve(ctx context.Context, st storage.AllStorage, p domain.Placement) (commission.Result, error) {
	terms, err := st.JobCommissionTerms(ctx, p.JobID)
	if err != nil {
		return commission.Result{}, fmt.Errorf("could not fetch job commission terms: %w", err)
	}
	if terms == nil {
		return commission.Result{}, serrors.Wrap(serrors.ErrMisconfigured, commission.ErrNoCommissionTerms,
			"job %s not found", p.JobID)
	}

	now := l.now()
	campaign, err := st.CampaignForJob(ctx, p.JobID, now)
	if err != nil {
		return commission.Result{}, fmt.Errorf("could not fetch job campaign: %w", err)
	}

	referrer := domain.AdminReferrer()
	if p.ReferrerID != nil {
		r, err := st.Referrer(ctx, *p.ReferrerID)
		if err != nil {
			return commission.Result{}, fmt.Errorf("could not fetch referrer: %w", err)
		}
		if r == nil {
			return commission.Result{}, serrors.With(serrors.ErrMisconfigured, "referrer %s not found", *p.ReferrerID)
		}
		referrer = *r
	}

	candidate, err := st.CandidateByID(ctx, p.CandidateID)
	if err != nil {
		return commission.Result{}, fmt.Errorf("could not fetch candidate: %w", err)
	}

	salary := decimal.Zero
	if p.Salary != nil {
		salary = *p.Salary
	}

	return l.resolver.Resolve(commission.Input{ //nolint: wrapcheck
		Terms:        *terms,
		Campaign:     campaign,
		Referrer:     referrer,
		Candidate:    candidate,
		AnnualSalary: salary,
		Now:          now,
	})
}

// PaymentRequest returns a payment request or a not-found error.
func (l *lifecycle) PaymentRequest(ctx context.Context, id domain.PaymentRequestID) (*domain.PaymentRequest, error) {
	res, err := l.storage.PaymentRequestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get payment request: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "payment request not found")
	}

	return res, nil
}

// Approve moves a Pending request to Approved.
func (l *lifecycle) Approve(ctx context.Context, id domain.PaymentRequestID) (*domain.PaymentRequest, error) {
	ctx, span := startTransitionSpan(ctx, "lifecycle.Approve", id)
	defer span.End()

	res, _, err := l.transition(ctx, l.storage, id, storage.PaymentRequestTransition{
		From: domain.PaymentRequestStatusPending,
		To:   domain.PaymentRequestStatusApproved,
		At:   l.now(),
	})
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not approve payment request: %w", err)
	}

	return res, nil
}

// Reject moves a Pending request to Rejected, storing a mandatory reason.
func (l *lifecycle) Reject(ctx context.Context,
	id domain.PaymentRequestID,
	reason string) (*domain.PaymentRequest, error) {
	ctx, span := startTransitionSpan(ctx, "lifecycle.Reject", id)
	defer span.End()

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "rejection reason is required")
	}

	res, applied, err := l.transition(ctx, l.storage, id, storage.PaymentRequestTransition{
		From:   domain.PaymentRequestStatusPending,
		To:     domain.PaymentRequestStatusRejected,
		At:     l.now(),
		Reason: reason,
	})
	if err == nil && !applied && res.RejectionReason != reason {
		err = serrors.With(serrors.ErrConflict, "payment request was already rejected with another reason")
	}
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not reject payment request: %w", err)
	}

	return res, nil
}

// MarkPaid moves an Approved request to Paid and, in the same transaction,
// advances its placement to Paid.
func (l *lifecycle) MarkPaid(ctx context.Context, id domain.PaymentRequestID) (*domain.PaymentRequest, error) {
	ctx, span := startTransitionSpan(ctx, "lifecycle.MarkPaid", id)
	defer span.End()

	var paid *domain.PaymentRequest
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, applied, err := l.transition(ctx, tx, id, storage.PaymentRequestTransition{
			From: domain.PaymentRequestStatusApproved,
			To:   domain.PaymentRequestStatusPaid,
			At:   l.now(),
		})
		if err != nil {
			return err
		}
		paid = res
		if !applied {
			return nil
		}

		return advancePlacementToPaid(ctx, tx, res.PlacementID)
	}); err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not mark payment request paid: %w", err)
	}

	return paid, nil
}

func advancePlacementToPaid(ctx context.Context, tx storage.AllStorage, id domain.PlacementID) error {
	p, err := tx.PlacementByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not fetch placement: %w", err)
	}
	if p == nil {
		return serrors.With(serrors.ErrNotFound, "placement %s not found", id)
	}
	if p.Status >= domain.PlacementStatusPaid {
		return nil
	}

	status := domain.PlacementStatusPaid
	if _, err := tx.UpdatePlacement(ctx, id, storage.PlacementUpdates{Status: &status}); err != nil {
		return fmt.Errorf("could not mark placement paid: %w", err)
	}

	return nil
}

// transition applies a conditional status change. When no row matched, the
// current row decides the result: already in the target status means another
// writer won the race and the row is returned as is; any other status is a
// conflict. applied reports whether this call changed the row.
func (l *lifecycle) transition(ctx context.Context,
	st storage.AllStorage,
	id domain.PaymentRequestID,
	t storage.PaymentRequestTransition) (*domain.PaymentRequest, bool, error) {
	updated, err := st.TransitionPaymentRequest(ctx, id, t)
	if err != nil {
		return nil, false, fmt.Errorf("could not transition payment request: %w", err)
	}
	if updated != nil {
		l.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", t.To.String())))
		logger.Info(ctx, "payment request transitioned",
			zap.Stringer("paymentRequestID", id),
			zap.Stringer("from", t.From),
			zap.Stringer("to", t.To))

		return updated, true, nil
	}

	current, err := st.PaymentRequestByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("could not get payment request: %w", err)
	}
	if current == nil {
		return nil, false, serrors.With(serrors.ErrNotFound, "payment request not found")
	}
	if current.Status == t.To {
		logger.Info(ctx, "payment request already transitioned",
			zap.Stringer("paymentRequestID", id),
			zap.Stringer("status", current.Status))

		return current, false, nil
	}

	return nil, false, serrors.With(serrors.ErrConflict,
		"payment request cannot move from %s to %s", current.Status, t.To)
}

func startTransitionSpan(ctx context.Context, name string, id domain.PaymentRequestID) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("payment_request.id", id.String()))) //nolint: spancheck
}

// Quote resolves the commission a placement would earn now, without saving it.
func (l *lifecycle) Quote(ctx context.Context, placementID domain.PlacementID) (*Quote, error) {
	ctx, span := tracer.Start(ctx, "lifecycle.Quote",
		trace.WithAttributes(attribute.String("placement.id", placementID.String())))
	defer span.End()

	p, err := l.storage.PlacementByID(ctx, placementID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch placement: %w", err)
	}
	if p == nil {
		return nil, serrors.With(serrors.ErrNotFound, "placement not found")
	}

	res, err := l.resolve(ctx, l.storage, *p)
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not quote commission: %w", err)
	}

	return &Quote{
		PlacementID: p.ID,
		Amount:      res.Amount,
		Rule:        res.Rule,
		Admin:       p.ReferrerID == nil,
	}, nil
}
