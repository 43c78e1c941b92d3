package lifecycle

import (
	"context"

	"commissions/pkg/domain"
)

//go:generate mockgen -package mocklifecycle -source=interface.go -destination=mock/mocklifecycle.go *
type Lifecycle interface {
	UpdatePlacement(ctx context.Context, change PlacementChange) (*domain.Placement, Outcome, error)
	PaymentRequest(ctx context.Context, ID domain.PaymentRequestID) (*domain.PaymentRequest, error)
	Approve(ctx context.Context, ID domain.PaymentRequestID) (*domain.PaymentRequest, error)
	Reject(ctx context.Context, ID domain.PaymentRequestID, reason string) (*domain.PaymentRequest, error)
	MarkPaid(ctx context.Context, ID domain.PaymentRequestID) (*domain.PaymentRequest, error)
	Quote(ctx context.Context, placementID domain.PlacementID) (*Quote, error)
}
