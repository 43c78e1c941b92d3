package domain

import "github.com/google/uuid"

// PlacementID uniquely identifies a placement (a candidate's progress against one job).
type PlacementID uuid.UUID

// PaymentRequestID uniquely identifies a payment request.
type PaymentRequestID uuid.UUID

// JobID uniquely identifies a job opening.
type JobID uuid.UUID

// CollaboratorID uniquely identifies an external referrer.
type CollaboratorID uuid.UUID

// CandidateID uniquely identifies a candidate.
type CandidateID uuid.UUID

// CampaignID uniquely identifies a commission campaign.
type CampaignID uuid.UUID

func (id PlacementID) String() string      { return uuid.UUID(id).String() }
func (id PaymentRequestID) String() string { return uuid.UUID(id).String() }
func (id JobID) String() string            { return uuid.UUID(id).String() }
func (id CollaboratorID) String() string   { return uuid.UUID(id).String() }
