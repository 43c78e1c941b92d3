package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionKind tells whether a job pays a flat amount or a percent of the
// annual salary.
type CommissionKind string

const (
	CommissionKindFixed   CommissionKind = "fixed"
	CommissionKindPercent CommissionKind = "percent"
)

// OverrideKey identifies a negotiated exception category attached to a job.
type OverrideKey struct {
	TypeID  int `json:"typeId"`
	ValueID int `json:"valueId"`
}

// CandidateAttribute names a candidate field an override predicate compares against.
type CandidateAttribute string

const (
	CandidateAttributeExperienceYears CandidateAttribute = "experience_years"
	CandidateAttributeJLPTLevel       CandidateAttribute = "jlpt_level"
)

// ComparisonOperator is the operator of an override predicate.
type ComparisonOperator string

const (
	OperatorGTE     ComparisonOperator = ">="
	OperatorLTE     ComparisonOperator = "<="
	OperatorGT      ComparisonOperator = ">"
	OperatorLT      ComparisonOperator = "<"
	OperatorEQ      ComparisonOperator = "="
	OperatorBetween ComparisonOperator = "between"
)

// Predicate gates an override entry on a candidate attribute. For
// OperatorBetween both bounds are inclusive and Upper must be set.
type Predicate struct {
	Attribute CandidateAttribute `json:"attribute"`
	Operator  ComparisonOperator `json:"operator"`
	Value     decimal.Decimal    `json:"value"`
	Upper     *decimal.Decimal   `json:"upper,omitempty"`
}

// OverrideEntry is one keyed commission value attached to a job. Amount is a
// flat amount for fixed jobs and a percent (0-100) for percent jobs.
type OverrideEntry struct {
	Key       OverrideKey     `json:"key"`
	Amount    decimal.Decimal `json:"amount"`
	Predicate *Predicate      `json:"predicate,omitempty"`
	// Position keeps the configured order; the first entry is the fallback.
	Position int `json:"position"`
}

// JobCommissionTerms are the per-job commission settings read by the resolver.
type JobCommissionTerms struct {
	JobID   JobID           `json:"jobId"`
	Kind    CommissionKind  `json:"kind"`
	Entries []OverrideEntry `json:"entries"`
}

// CampaignStatus is the activation state of a commission campaign.
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusInactive CampaignStatus = "inactive"
)

// Campaign overrides the commission of its member jobs with a flat percent of
// the annual salary while it is active and inside its validity window.
type Campaign struct {
	ID      CampaignID      `json:"id"`
	Name    string          `json:"name"`
	Status  CampaignStatus  `json:"status"`
	Percent decimal.Decimal `json:"percent"`
	// StartDate and EndDate are calendar dates; nil leaves that side of the window open.
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Referrer is whoever gets credited for a placement: a collaborator with a rank
// or an internal admin (no rank multiplier).
type Referrer struct {
	// CollaboratorID is nil for an internal admin.
	CollaboratorID *CollaboratorID `json:"collaboratorId,omitempty"`
	// RankPercent is the collaborator's reward percent (0-100); nil when no rank is assigned.
	RankPercent *decimal.Decimal `json:"rankPercent,omitempty"`
}

// AdminReferrer is the referrer used when an internal admin placed the candidate.
func AdminReferrer() Referrer { return Referrer{} }

// IsAdmin reports whether no collaborator is credited.
func (r Referrer) IsAdmin() bool { return r.CollaboratorID == nil }

// Candidate holds the attributes override predicates can compare against.
type Candidate struct {
	ID              CandidateID      `json:"id"`
	ExperienceYears *decimal.Decimal `json:"experienceYears,omitempty"`
	// JLPTLevel is the Japanese-Language Proficiency Test level, 1 (N1) to 5 (N5).
	JLPTLevel *int `json:"jlptLevel,omitempty"`
}
