package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequestStatus is the approval state of a payment request. Numeric
// values are persisted as-is.
type PaymentRequestStatus int

const (
	// PaymentRequestStatusPending is the initial state; the amount may still be recomputed.
	PaymentRequestStatusPending PaymentRequestStatus = 0
	// PaymentRequestStatusApproved is set by staff or by the payment scheduler.
	PaymentRequestStatusApproved PaymentRequestStatus = 1
	// PaymentRequestStatusRejected is terminal; rejected requests are never reopened.
	PaymentRequestStatusRejected PaymentRequestStatus = 2
	// PaymentRequestStatusPaid is terminal.
	PaymentRequestStatusPaid PaymentRequestStatus = 3
)

func (s PaymentRequestStatus) String() string {
	switch s {
	case PaymentRequestStatusPending:
		return "PENDING"
	case PaymentRequestStatusApproved:
		return "APPROVED"
	case PaymentRequestStatusRejected:
		return "REJECTED"
	case PaymentRequestStatusPaid:
		return "PAID"
	default:
		return "PaymentRequestStatus(" + strconv.Itoa(int(s)) + ")"
	}
}

// PaymentRequest is the approvable record of money owed to a referrer for one placement.
type PaymentRequest struct {
	// ID is the unique identifier of the payment request.
	ID PaymentRequestID `json:"id"`
	// PlacementID references the placement; at most one live request exists per placement.
	PlacementID PlacementID `json:"placementId"`
	// ReferrerID is the collaborator the money is owed to.
	ReferrerID CollaboratorID `json:"referrerId"`

	// Amount is fixed once the request leaves Pending.
	Amount decimal.Decimal `json:"amount"`
	// Status is the current approval state.
	Status PaymentRequestStatus `json:"status"`
	// RejectionReason is only set when Status is Rejected.
	RejectionReason string `json:"rejectionReason,omitempty"`

	ApprovedAt time.Time `json:"approvedAt"`
	RejectedAt time.Time `json:"rejectedAt"`
	PaidAt     time.Time `json:"paidAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
