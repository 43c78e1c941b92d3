package postgres

import (
	"context"
	"fmt"
	"time"

	"commissions/pkg/domain"
	"commissions/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	placementsTable = "placements"
)

// PlacementByID returns a placement by its ID, excluding soft-deleted rows.
func (p *PgSQL) PlacementByID(ctx context.Context, id domain.PlacementID) (*domain.Placement, error) {
	var row PgPlacement
	found, err := p.Builder.From(placementsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch placement by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdatePlacement applies the non-nil fields of updates and returns the updated row.
func (p *PgSQL) UpdatePlacement(ctx context.Context,
	id domain.PlacementID,
	updates storage.PlacementUpdates) (*domain.Placement, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = int(*updates.Status)
	}
	if updates.ReferrerID != nil {
		rec["referrer_id"] = uuid.UUID(*updates.ReferrerID)
	}
	if updates.Salary != nil {
		rec["salary"] = *updates.Salary
	}
	if updates.PlacedAt != nil {
		rec["placed_at"] = *updates.PlacedAt
	}
	if updates.ExpectedPaymentAt != nil {
		rec["expected_payment_at"] = *updates.ExpectedPaymentAt
	}

	var row PgPlacement
	found, err := p.Builder.Update(placementsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgPlacement{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update placement in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// PlacementsPlacedBefore returns a keyset-paginated batch of placements in the
// given status with a placement date on or before cutoff.
func (p *PgSQL) PlacementsPlacedBefore(ctx context.Context,
	status domain.PlacementStatus,
	cutoff time.Time,
	afterID *domain.PlacementID,
	limit uint) ([]domain.Placement, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(int(status)),
		goqu.I("placed_at").Lte(cutoff),
		goqu.I("deleted_at").IsNull(),
	}
	if afterID != nil {
		w = append(w, goqu.I("id").Gt(uuid.UUID(*afterID)))
	}

	var rows []PgPlacement
	if err := p.Builder.From(placementsTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch placements placed before cutoff: %w", err)
	}

	return pgPlacementsToDomain(rows), nil
}

// AdvancePlacementStatus moves a placement from one status to another. The
// write is conditional on the current status so concurrent writers cannot
// move a placement twice.
func (p *PgSQL) AdvancePlacementStatus(ctx context.Context,
	id domain.PlacementID,
	from, to domain.PlacementStatus) (bool, error) {
	res, err := p.Builder.Update(placementsTable).
		Set(goqu.Record{
			"status":     int(to),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(int(from)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not advance placement status in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
