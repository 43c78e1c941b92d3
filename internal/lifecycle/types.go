package lifecycle

import (
	"time"

	"commissions/pkg/commission"
	"commissions/pkg/domain"

	"github.com/shopspring/decimal"
)

// PlacementChange is a staff edit of a placement. Nil fields are left as they are.
type PlacementChange struct {
	ID                domain.PlacementID
	Status            *domain.PlacementStatus
	Salary            *decimal.Decimal
	ReferrerID        *domain.CollaboratorID
	PlacedAt          *time.Time
	ExpectedPaymentAt *time.Time
}

// OutcomeAction names what the commission side effect of a placement update did.
type OutcomeAction string

const (
	// OutcomeNone means the update did not trigger the side effect.
	OutcomeNone       OutcomeAction = "none"
	OutcomeCreated    OutcomeAction = "created"
	OutcomeRecomputed OutcomeAction = "recomputed"
	OutcomeSkipped    OutcomeAction = "skipped"
	OutcomeFailed     OutcomeAction = "failed"
)

// Outcome reports the commission side effect of UpdatePlacement. A failed
// side effect is reported here and never as the error of the update itself.
type Outcome struct {
	Action OutcomeAction
	// PaymentRequest is the created, recomputed or blocking request, if any.
	PaymentRequest *domain.PaymentRequest
	// Rule is the commission rule that produced the amount.
	Rule commission.RuleName
	// Reason explains a skip.
	Reason string
	// Err is set when Action is OutcomeFailed.
	Err error
}

// Quote is the commission a placement would earn if it were resolved now.
type Quote struct {
	PlacementID domain.PlacementID
	Amount      decimal.Decimal
	Rule        commission.RuleName
	// Admin is true when the placement has no collaborator referrer.
	Admin bool
}
