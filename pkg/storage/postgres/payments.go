package postgres

import (
	"context"
	"fmt"
	"time"

	"commissions/pkg/domain"
	"commissions/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	paymentRequestsTable = "payment_requests"
)

// StorePaymentRequest inserts a payment request. The partial unique index on
// placement_id is the authoritative guard against a second live request.
func (p *PgSQL) StorePaymentRequest(ctx context.Context,
	request domain.PaymentRequest) (*domain.PaymentRequest, error) {
	var row PgPaymentRequest
	row.FromDomain(request)

	var stored PgPaymentRequest
	if _, err := p.Builder.Insert(paymentRequestsTable).
		Rows(row).
		Returning(&PgPaymentRequest{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("payment request for placement %s: %w", request.PlacementID, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("could not store payment request into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// PaymentRequestByID returns a payment request by its ID, excluding soft-deleted rows.
func (p *PgSQL) PaymentRequestByID(ctx context.Context,
	id domain.PaymentRequestID) (*domain.PaymentRequest, error) {
	return p.paymentRequestWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// PaymentRequestByPlacementID returns the live payment request of a placement.
func (p *PgSQL) PaymentRequestByPlacementID(ctx context.Context,
	placementID domain.PlacementID) (*domain.PaymentRequest, error) {
	return p.paymentRequestWhere(ctx, goqu.I("placement_id").Eq(uuid.UUID(placementID)))
}

func (p *PgSQL) paymentRequestWhere(ctx context.Context, cond goqu.Expression) (*domain.PaymentRequest, error) {
	var row PgPaymentRequest
	found, err := p.Builder.From(paymentRequestsTable).
		Where(cond, goqu.I("deleted_at").IsNull()).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payment request: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdatePendingPaymentRequest overwrites the referrer and amount of a Pending request.
func (p *PgSQL) UpdatePendingPaymentRequest(ctx context.Context,
	id domain.PaymentRequestID,
	referrerID domain.CollaboratorID,
	amount decimal.Decimal) (*domain.PaymentRequest, error) {
	return p.updatePaymentRequest(ctx, id, domain.PaymentRequestStatusPending, goqu.Record{
		"referrer_id": uuid.UUID(referrerID),
		"amount":      amount,
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	})
}

// TransitionPaymentRequest applies a conditional status change.
func (p *PgSQL) TransitionPaymentRequest(ctx context.Context,
	id domain.PaymentRequestID,
	transition storage.PaymentRequestTransition) (*domain.PaymentRequest, error) {
	rec := goqu.Record{
		"status":     int(transition.To),
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	switch transition.To {
	case domain.PaymentRequestStatusApproved:
		rec["approved_at"] = transition.At
	case domain.PaymentRequestStatusRejected:
		rec["rejected_at"] = transition.At
		rec["rejection_reason"] = transition.Reason
	case domain.PaymentRequestStatusPaid:
		rec["paid_at"] = transition.At
	case domain.PaymentRequestStatusPending:
		return nil, fmt.Errorf("could not transition payment request: pending is not a target status")
	}

	return p.updatePaymentRequest(ctx, id, transition.From, rec)
}

func (p *PgSQL) updatePaymentRequest(ctx context.Context,
	id domain.PaymentRequestID,
	from domain.PaymentRequestStatus,
	rec goqu.Record) (*domain.PaymentRequest, error) {
	var row PgPaymentRequest
	found, err := p.Builder.Update(paymentRequestsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(int(from)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgPaymentRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update payment request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ApprovePendingPaymentRequests approves all Pending requests of a placement.
func (p *PgSQL) ApprovePendingPaymentRequests(ctx context.Context,
	placementID domain.PlacementID,
	at time.Time) (int64, error) {
	res, err := p.Builder.Update(paymentRequestsTable).
		Set(goqu.Record{
			"status":      int(domain.PaymentRequestStatusApproved),
			"approved_at": at,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("placement_id").Eq(uuid.UUID(placementID)),
			goqu.I("status").Eq(int(domain.PaymentRequestStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not approve pending payment requests in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}
