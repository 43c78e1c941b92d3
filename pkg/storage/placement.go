package storage

import (
	"context"
	"time"

	"commissions/pkg/domain"

	"github.com/shopspring/decimal"
)

// PlacementUpdates describes optional fields applied to a placement. Only
// non-nil fields are written.
type PlacementUpdates struct {
	// Status is the new workflow status.
	Status *domain.PlacementStatus
	// ReferrerID assigns the collaborator credited with the placement.
	ReferrerID *domain.CollaboratorID
	// Salary replaces the agreed annual salary.
	Salary *decimal.Decimal
	// PlacedAt replaces the placement date.
	PlacedAt *time.Time
	// ExpectedPaymentAt replaces the expected payment date.
	ExpectedPaymentAt *time.Time
}

// PlacementStorage defines reads and writes on placements. Soft-deleted
// placements are invisible to every method.
type PlacementStorage interface {
	// PlacementByID fetches a placement, returning nil when not found.
	PlacementByID(ctx context.Context, ID domain.PlacementID) (*domain.Placement, error)
	// UpdatePlacement applies updates and returns the updated row, or nil when
	// the placement does not exist. updated_at is set automatically.
	UpdatePlacement(ctx context.Context, ID domain.PlacementID, updates PlacementUpdates) (*domain.Placement, error)
	// PlacementsPlacedBefore returns up to limit placements in status, whose
	// placement date is on or before cutoff, ordered by id and starting
	// strictly after the afterID cursor when it is non-nil.
	PlacementsPlacedBefore(ctx context.Context,
		status domain.PlacementStatus,
		cutoff time.Time,
		afterID *domain.PlacementID,
		limit uint) ([]domain.Placement, error)
	// AdvancePlacementStatus sets the status to `to` only if the row is
	// currently in `from`. It reports whether a row was changed.
	AdvancePlacementStatus(ctx context.Context, ID domain.PlacementID, from, to domain.PlacementStatus) (bool, error)
}
