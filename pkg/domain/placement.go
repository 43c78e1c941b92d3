package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PlacementStatus is the ordered workflow status of a placement. Numeric values
// are persisted as-is and must stay stable.
type PlacementStatus int

const (
	PlacementStatusSubmitted      PlacementStatus = 1
	PlacementStatusScreening      PlacementStatus = 2
	PlacementStatusCVPassed       PlacementStatus = 3
	PlacementStatusFirstInterview PlacementStatus = 4
	PlacementStatusNextInterview  PlacementStatus = 5
	PlacementStatusFinalInterview PlacementStatus = 6
	PlacementStatusOffered        PlacementStatus = 7
	// PlacementStatusPlaced means the candidate accepted and started. Entering it
	// creates the payment request for the referrer.
	PlacementStatusPlaced PlacementStatus = 8
	// PlacementStatusPaymentRequested is only ever set by the payment scheduler.
	PlacementStatusPaymentRequested PlacementStatus = 10
	// PlacementStatusPaid is terminal.
	PlacementStatusPaid PlacementStatus = 11
)

var placementStatusNames = map[PlacementStatus]string{ //nolint: gochecknoglobals
	PlacementStatusSubmitted:        "SUBMITTED",
	PlacementStatusScreening:        "SCREENING",
	PlacementStatusCVPassed:         "CV_PASSED",
	PlacementStatusFirstInterview:   "FIRST_INTERVIEW",
	PlacementStatusNextInterview:    "NEXT_INTERVIEW",
	PlacementStatusFinalInterview:   "FINAL_INTERVIEW",
	PlacementStatusOffered:          "OFFERED",
	PlacementStatusPlaced:           "PLACED",
	PlacementStatusPaymentRequested: "PAYMENT_REQUESTED",
	PlacementStatusPaid:             "PAID",
}

// Valid reports whether s is one of the known workflow statuses.
func (s PlacementStatus) Valid() bool {
	_, ok := placementStatusNames[s]

	return ok
}

func (s PlacementStatus) String() string {
	if name, ok := placementStatusNames[s]; ok {
		return name
	}

	return "PlacementStatus(" + strconv.Itoa(int(s)) + ")"
}

// ParsePlacementStatus returns the status with the given name, e.g. "PLACED".
func ParsePlacementStatus(name string) (PlacementStatus, bool) {
	for s, n := range placementStatusNames {
		if n == name {
			return s, true
		}
	}

	return 0, false
}

// Placement tracks one candidate's progress through a job opening.
type Placement struct {
	// ID is the unique identifier of the placement.
	ID PlacementID `json:"id"`
	// JobID references the job the candidate was placed into.
	JobID JobID `json:"jobId"`
	// ReferrerID is the collaborator credited with the referral. Nil means an
	// internal admin referred the candidate directly.
	ReferrerID *CollaboratorID `json:"referrerId,omitempty"`
	// CandidateID references the candidate record.
	CandidateID CandidateID `json:"candidateId"`

	// Status is the current workflow status.
	Status PlacementStatus `json:"status"`
	// Salary is the agreed annual salary, nil until negotiated.
	Salary *decimal.Decimal `json:"salary,omitempty"`
	// PlacedAt is the date the candidate was placed.
	PlacedAt *time.Time `json:"placedAt,omitempty"`
	// ExpectedPaymentAt is the date the referral fee is expected to be paid.
	ExpectedPaymentAt *time.Time `json:"expectedPaymentAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}

// HasPositiveSalary reports whether an agreed salary greater than zero is set.
func (p Placement) HasPositiveSalary() bool {
	return p.Salary != nil && p.Salary.IsPositive()
}

// ReferrerChanged reports whether p and other credit different referrers.
func (p Placement) ReferrerChanged(other Placement) bool {
	switch {
	case p.ReferrerID == nil && other.ReferrerID == nil:
		return false
	case p.ReferrerID == nil || other.ReferrerID == nil:
		return true
	default:
		return *p.ReferrerID != *other.ReferrerID
	}
}

// SalaryChanged reports whether the salary differs between p and other,
// treating nil and a set value as different.
func (p Placement) SalaryChanged(other Placement) bool {
	switch {
	case p.Salary == nil && other.Salary == nil:
		return false
	case p.Salary == nil || other.Salary == nil:
		return true
	default:
		return !p.Salary.Equal(*other.Salary)
	}
}
