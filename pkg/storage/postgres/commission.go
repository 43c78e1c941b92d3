package postgres

import (
	"context"
	"fmt"
	"time"

	"commissions/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	jobsTable          = "jobs"
	jobValuesTable     = "job_values"
	campaignsTable     = "campaigns"
	campaignJobsTable  = "campaign_jobs"
	collaboratorsTable = "collaborators"
	ranksTable         = "ranks"
	candidatesTable    = "candidates"
)

// JobCommissionTerms loads the commission kind of a job and its override entries.
func (p *PgSQL) JobCommissionTerms(ctx context.Context, jobID domain.JobID) (*domain.JobCommissionTerms, error) {
	var kind string
	found, err := p.Builder.From(jobsTable).
		Select("commission_kind").
		Where(
			goqu.I("id").Eq(uuid.UUID(jobID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanValContext(ctx, &kind)
	if err != nil {
		return nil, fmt.Errorf("could not fetch job commission kind: %w", err)
	}
	if !found {
		return nil, nil
	}

	var rows []PgJobValue
	if err := p.Builder.From(jobValuesTable).
		Select(&PgJobValue{}).
		Where(goqu.I("job_id").Eq(uuid.UUID(jobID))).
		Order(goqu.I("position").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch job values: %w", err)
	}

	entries := make([]domain.OverrideEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].ToDomain())
	}

	return &domain.JobCommissionTerms{
		JobID:   jobID,
		Kind:    domain.CommissionKind(kind),
		Entries: entries,
	}, nil
}

// CampaignForJob returns the job's active campaign running on the given day.
func (p *PgSQL) CampaignForJob(ctx context.Context, jobID domain.JobID, on time.Time) (*domain.Campaign, error) {
	day := on.UTC().Format(time.DateOnly)

	var row PgCampaign
	found, err := p.Builder.From(goqu.T(campaignsTable).As("c")).
		Select(
			goqu.I("c.id").As("id"),
			goqu.I("c.name").As("name"),
			goqu.I("c.status").As("status"),
			goqu.I("c.percent").As("percent"),
			goqu.I("c.start_date").As("start_date"),
			goqu.I("c.end_date").As("end_date"),
		).
		Join(goqu.T(campaignJobsTable).As("cj"), goqu.On(goqu.I("cj.campaign_id").Eq(goqu.I("c.id")))).
		Where(
			goqu.I("cj.job_id").Eq(uuid.UUID(jobID)),
			goqu.I("c.deleted_at").IsNull(),
			goqu.I("c.status").Eq(string(domain.CampaignStatusActive)),
			goqu.Or(goqu.I("c.start_date").IsNull(), goqu.I("c.start_date").Lte(goqu.L("?::date", day))),
			goqu.Or(goqu.I("c.end_date").IsNull(), goqu.I("c.end_date").Gte(goqu.L("?::date", day))),
		).
		Order(
			goqu.I("c.start_date").Desc().NullsLast(),
			goqu.I("c.created_at").Desc(),
		).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch campaign for job: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Referrer returns a collaborator with the reward percent of its current rank.
func (p *PgSQL) Referrer(ctx context.Context, id domain.CollaboratorID) (*domain.Referrer, error) {
	var row PgReferrer
	found, err := p.Builder.From(goqu.T(collaboratorsTable).As("co")).
		Select(
			goqu.I("co.id").As("id"),
			goqu.I("r.reward_percent").As("reward_percent"),
		).
		LeftJoin(goqu.T(ranksTable).As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("co.rank_id")))).
		Where(
			goqu.I("co.id").Eq(uuid.UUID(id)),
			goqu.I("co.deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch referrer: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CandidateByID returns the candidate attributes used by override predicates.
func (p *PgSQL) CandidateByID(ctx context.Context, id domain.CandidateID) (*domain.Candidate, error) {
	var row PgCandidate
	found, err := p.Builder.From(candidatesTable).
		Select(&PgCandidate{}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch candidate: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
