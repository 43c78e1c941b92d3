package storage

import (
	"context"
	"time"

	"commissions/pkg/domain"

	"github.com/shopspring/decimal"
)

// PaymentRequestTransition describes a conditional status change of a payment
// request together with the timestamp and reason it carries.
type PaymentRequestTransition struct {
	// From is the status the row must currently be in.
	From domain.PaymentRequestStatus
	// To is the target status; it decides which timestamp column At is written to.
	To domain.PaymentRequestStatus
	// At is the moment of the transition.
	At time.Time
	// Reason is stored as rejection reason when To is Rejected.
	Reason string
}

// PaymentRequestStorage defines reads and writes on payment requests.
// Soft-deleted requests are invisible to every method.
type PaymentRequestStorage interface {
	// StorePaymentRequest inserts a new request and returns the stored row. It
	// returns ErrAlreadyExists when the placement already has a live request.
	StorePaymentRequest(ctx context.Context, request domain.PaymentRequest) (*domain.PaymentRequest, error)
	// PaymentRequestByID fetches a request, returning nil when not found.
	PaymentRequestByID(ctx context.Context, ID domain.PaymentRequestID) (*domain.PaymentRequest, error)
	// PaymentRequestByPlacementID fetches the live request of a placement,
	// returning nil when there is none.
	PaymentRequestByPlacementID(ctx context.Context, placementID domain.PlacementID) (*domain.PaymentRequest, error)
	// UpdatePendingPaymentRequest overwrites the referrer and amount only while
	// the request is Pending. It returns nil when no Pending row matched.
	UpdatePendingPaymentRequest(ctx context.Context,
		ID domain.PaymentRequestID,
		referrerID domain.CollaboratorID,
		amount decimal.Decimal) (*domain.PaymentRequest, error)
	// TransitionPaymentRequest applies transition only if the row is currently
	// in transition.From. It returns nil when no row matched.
	TransitionPaymentRequest(ctx context.Context,
		ID domain.PaymentRequestID,
		transition PaymentRequestTransition) (*domain.PaymentRequest, error)
	// ApprovePendingPaymentRequests approves every Pending request of a
	// placement, stamping approved_at with at, and returns how many were changed.
	ApprovePendingPaymentRequests(ctx context.Context, placementID domain.PlacementID, at time.Time) (int64, error)
}
