package storage

import (
	"context"
	"time"

	"commissions/pkg/domain"
)

// CommissionStorage loads the read-only inputs of commission resolution.
type CommissionStorage interface {
	// JobCommissionTerms returns the commission kind and override entries of a
	// job, entries ordered by position. It returns nil when the job does not exist.
	JobCommissionTerms(ctx context.Context, jobID domain.JobID) (*domain.JobCommissionTerms, error)
	// CampaignForJob returns the active campaign of the job whose validity
	// window contains the UTC date of on, latest start first, or nil when
	// there is none.
	CampaignForJob(ctx context.Context, jobID domain.JobID, on time.Time) (*domain.Campaign, error)
	// Referrer returns the collaborator together with its current rank percent.
	// RankPercent is nil when no rank is assigned. It returns nil when the
	// collaborator does not exist.
	Referrer(ctx context.Context, ID domain.CollaboratorID) (*domain.Referrer, error)
	// CandidateByID returns the candidate attributes, or nil when not found.
	CandidateByID(ctx context.Context, ID domain.CandidateID) (*domain.Candidate, error)
}
