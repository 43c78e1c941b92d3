package postgres

import (
	"database/sql"
	"time"

	"commissions/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PgPlacement struct {
	ID          uuid.UUID     `db:"id"           goqu:"skipinsert"`
	JobID       uuid.UUID     `db:"job_id"`
	ReferrerID  uuid.NullUUID `db:"referrer_id"`
	CandidateID uuid.UUID     `db:"candidate_id"`

	Status            int                 `db:"status"`
	Salary            decimal.NullDecimal `db:"salary"`
	PlacedAt          sql.NullTime        `db:"placed_at"`
	ExpectedPaymentAt sql.NullTime        `db:"expected_payment_at"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPlacement) ToDomain() *domain.Placement {
	out := &domain.Placement{
		ID:                domain.PlacementID(p.ID),
		JobID:             domain.JobID(p.JobID),
		CandidateID:       domain.CandidateID(p.CandidateID),
		Status:            domain.PlacementStatus(p.Status),
		PlacedAt:          nullTimePtr(p.PlacedAt),
		ExpectedPaymentAt: nullTimePtr(p.ExpectedPaymentAt),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
		DeletedAt:         p.DeletedAt.Time,
	}
	if p.ReferrerID.Valid {
		id := domain.CollaboratorID(p.ReferrerID.UUID)
		out.ReferrerID = &id
	}
	if p.Salary.Valid {
		salary := p.Salary.Decimal
		out.Salary = &salary
	}

	return out
}

type PgPaymentRequest struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	PlacementID uuid.UUID `db:"placement_id"`
	ReferrerID  uuid.UUID `db:"referrer_id"`

	Amount          decimal.Decimal `db:"amount"`
	Status          int             `db:"status"`
	RejectionReason sql.NullString  `db:"rejection_reason" goqu:"skipinsert"`

	ApprovedAt sql.NullTime `db:"approved_at" goqu:"skipinsert"`
	RejectedAt sql.NullTime `db:"rejected_at" goqu:"skipinsert"`
	PaidAt     sql.NullTime `db:"paid_at"     goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgPaymentRequest) ToDomain() *domain.PaymentRequest {
	return &domain.PaymentRequest{
		ID:              domain.PaymentRequestID(p.ID),
		PlacementID:     domain.PlacementID(p.PlacementID),
		ReferrerID:      domain.CollaboratorID(p.ReferrerID),
		Amount:          p.Amount,
		Status:          domain.PaymentRequestStatus(p.Status),
		RejectionReason: p.RejectionReason.String,
		ApprovedAt:      p.ApprovedAt.Time,
		RejectedAt:      p.RejectedAt.Time,
		PaidAt:          p.PaidAt.Time,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
		DeletedAt:       p.DeletedAt.Time,
	}
}

func (p *PgPaymentRequest) FromDomain(request domain.PaymentRequest) {
	*p = PgPaymentRequest{
		ID:          uuid.UUID(request.ID),
		PlacementID: uuid.UUID(request.PlacementID),
		ReferrerID:  uuid.UUID(request.ReferrerID),
		Amount:      request.Amount,
		Status:      int(request.Status),
	}
}

type PgJobValue struct {
	TypeID       int                 `db:"type_id"`
	ValueID      int                 `db:"value_id"`
	Amount       decimal.Decimal     `db:"amount"`
	Position     int                 `db:"position"`
	Attribute    sql.NullString      `db:"attribute"`
	Operator     sql.NullString      `db:"operator"`
	CompareValue decimal.NullDecimal `db:"compare_value"`
	CompareUpper decimal.NullDecimal `db:"compare_upper"`
}

func (p *PgJobValue) ToDomain() domain.OverrideEntry {
	out := domain.OverrideEntry{
		Key:      domain.OverrideKey{TypeID: p.TypeID, ValueID: p.ValueID},
		Amount:   p.Amount,
		Position: p.Position,
	}
	if p.Attribute.Valid && p.Operator.Valid {
		out.Predicate = &domain.Predicate{
			Attribute: domain.CandidateAttribute(p.Attribute.String),
			Operator:  domain.ComparisonOperator(p.Operator.String),
			Value:     p.CompareValue.Decimal,
		}
		if p.CompareUpper.Valid {
			upper := p.CompareUpper.Decimal
			out.Predicate.Upper = &upper
		}
	}

	return out
}

type PgCampaign struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	Status    string          `db:"status"`
	Percent   decimal.Decimal `db:"percent"`
	StartDate sql.NullTime    `db:"start_date"`
	EndDate   sql.NullTime    `db:"end_date"`
}

func (p *PgCampaign) ToDomain() *domain.Campaign {
	return &domain.Campaign{
		ID:        domain.CampaignID(p.ID),
		Name:      p.Name,
		Status:    domain.CampaignStatus(p.Status),
		Percent:   p.Percent,
		StartDate: nullTimePtr(p.StartDate),
		EndDate:   nullTimePtr(p.EndDate),
	}
}

type PgReferrer struct {
	ID            uuid.UUID           `db:"id"`
	RewardPercent decimal.NullDecimal `db:"reward_percent"`
}

func (p *PgReferrer) ToDomain() *domain.Referrer {
	id := domain.CollaboratorID(p.ID)
	out := &domain.Referrer{CollaboratorID: &id}
	if p.RewardPercent.Valid {
		rank := p.RewardPercent.Decimal
		out.RankPercent = &rank
	}

	return out
}

type PgCandidate struct {
	ID              uuid.UUID           `db:"id"`
	ExperienceYears decimal.NullDecimal `db:"experience_years"`
	JLPTLevel       sql.NullInt16       `db:"jlpt_level"`
}

func (p *PgCandidate) ToDomain() *domain.Candidate {
	out := &domain.Candidate{ID: domain.CandidateID(p.ID)}
	if p.ExperienceYears.Valid {
		years := p.ExperienceYears.Decimal
		out.ExperienceYears = &years
	}
	if p.JLPTLevel.Valid {
		level := int(p.JLPTLevel.Int16)
		out.JLPTLevel = &level
	}

	return out
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time

	return &v
}

func pgPlacementsToDomain(rows []PgPlacement) []domain.Placement {
	out := make([]domain.Placement, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
