package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"commissions/pkg/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_JobCommissionTerms(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()
	db := pg.DB.(*sql.DB)
	f := seedFixture(t, pg)

	_, err := db.ExecContext(ctx, `INSERT INTO job_values(job_id, type_id, value_id, amount, position)
		VALUES ($1, 1, 1, 20, 1)`, uuid.UUID(f.JobID))
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO job_values(job_id, type_id, value_id, amount, position,
			attribute, operator, compare_value, compare_upper)
		VALUES ($1, 2, 6, 30, 0, 'experience_years', 'between', 2, 5)`, uuid.UUID(f.JobID))
	require.NoError(t, err)

	terms, err := pg.JobCommissionTerms(ctx, f.JobID)
	require.NoError(t, err)
	require.NotNil(t, terms)
	require.Equal(t, domain.CommissionKindPercent, terms.Kind)
	require.Len(t, terms.Entries, 2)

	first := terms.Entries[0]
	require.Equal(t, domain.OverrideKey{TypeID: 2, ValueID: 6}, first.Key)
	require.True(t, decimal.NewFromInt(30).Equal(first.Amount))
	require.NotNil(t, first.Predicate)
	require.Equal(t, domain.CandidateAttributeExperienceYears, first.Predicate.Attribute)
	require.Equal(t, domain.OperatorBetween, first.Predicate.Operator)
	require.True(t, decimal.NewFromInt(2).Equal(first.Predicate.Value))
	require.NotNil(t, first.Predicate.Upper)
	require.True(t, decimal.NewFromInt(5).Equal(*first.Predicate.Upper))

	second := terms.Entries[1]
	require.Equal(t, domain.OverrideKey{TypeID: 1, ValueID: 1}, second.Key)
	require.Nil(t, second.Predicate)

	missing, err := pg.JobCommissionTerms(ctx, domain.JobID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func linkCampaign(t *testing.T, db *sql.DB, jobID domain.JobID, query string) uuid.UUID {
	t.Helper()
	id := insertID(t, db, query)
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO campaign_jobs(campaign_id, job_id) VALUES ($1, $2)`, id, uuid.UUID(jobID))
	require.NoError(t, err)

	return id
}

func TestPgSQL_CampaignForJob(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()
	db := pg.DB.(*sql.DB)
	f := seedFixture(t, pg)

	none, err := pg.CampaignForJob(ctx, f.JobID, date(2024, 4, 1))
	require.NoError(t, err)
	require.Nil(t, none)

	linkCampaign(t, db, f.JobID, `INSERT INTO campaigns(name, status, percent, start_date, end_date)
		VALUES ('old', 'inactive', 10, '2024-01-01', '2024-12-31') RETURNING id`)
	active := linkCampaign(t, db, f.JobID, `INSERT INTO campaigns(name, status, percent, start_date, end_date)
		VALUES ('spring', 'active', 5, '2024-03-01', '2024-05-31') RETURNING id`)

	got, err := pg.CampaignForJob(ctx, f.JobID, date(2024, 4, 1))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.CampaignID(active), got.ID)
	require.Equal(t, domain.CampaignStatusActive, got.Status)
	require.True(t, decimal.NewFromInt(5).Equal(got.Percent))
	require.NotNil(t, got.StartDate)
	require.True(t, date(2024, 3, 1).Equal(got.StartDate.UTC()))
	require.NotNil(t, got.EndDate)
	require.True(t, date(2024, 5, 31).Equal(got.EndDate.UTC()))

	// both bounds are inclusive
	for _, on := range []time.Time{date(2024, 3, 1), date(2024, 5, 31).Add(23 * time.Hour)} {
		got, err = pg.CampaignForJob(ctx, f.JobID, on)
		require.NoError(t, err)
		require.NotNil(t, got, on)
	}

	// the inactive campaign covers this day but never applies
	got, err = pg.CampaignForJob(ctx, f.JobID, date(2024, 8, 1))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_CampaignForJob_SkipsCampaignsOutsideTheirWindow(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()
	db := pg.DB.(*sql.DB)
	f := seedFixture(t, pg)

	running := linkCampaign(t, db, f.JobID, `INSERT INTO campaigns(name, status, percent, start_date, end_date)
		VALUES ('year', 'active', 8, '2026-01-01', '2026-12-31') RETURNING id`)
	linkCampaign(t, db, f.JobID, `INSERT INTO campaigns(name, status, percent, start_date)
		VALUES ('upcoming', 'active', 12, '2026-10-20') RETURNING id`)
	linkCampaign(t, db, f.JobID, `INSERT INTO campaigns(name, status, percent, start_date, end_date)
		VALUES ('ended', 'active', 15, '2026-09-01', '2026-09-30') RETURNING id`)

	got, err := pg.CampaignForJob(ctx, f.JobID, date(2026, 10, 15))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.CampaignID(running), got.ID)

	// once the upcoming one starts, the latest start wins
	got, err = pg.CampaignForJob(ctx, f.JobID, date(2026, 10, 20))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "upcoming", got.Name)
}

func TestPgSQL_Referrer(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()
	f := seedFixture(t, pg)

	got, err := pg.Referrer(ctx, f.CollaboratorID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.IsAdmin())
	require.Equal(t, f.CollaboratorID, *got.CollaboratorID)
	require.NotNil(t, got.RankPercent)
	require.True(t, decimal.NewFromInt(50).Equal(*got.RankPercent))

	unranked := insertID(t, pg.DB.(*sql.DB), `INSERT INTO collaborators(name) VALUES ('carol') RETURNING id`)
	got, err = pg.Referrer(ctx, domain.CollaboratorID(unranked))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Nil(t, got.RankPercent)

	missing, err := pg.Referrer(ctx, domain.CollaboratorID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_CandidateByID(t *testing.T) {
	pg := setupTestDB(t)

	ctx := context.Background()
	f := seedFixture(t, pg)

	got, err := pg.CandidateByID(ctx, f.CandidateID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ExperienceYears)
	require.True(t, decimal.RequireFromString("3.5").Equal(*got.ExperienceYears))
	require.NotNil(t, got.JLPTLevel)
	require.Equal(t, 2, *got.JLPTLevel)

	missing, err := pg.CandidateByID(ctx, domain.CandidateID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}
