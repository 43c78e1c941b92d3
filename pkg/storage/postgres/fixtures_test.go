package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"commissions/pkg/domain"
	"commissions/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture seeds the reference rows a placement depends on.
type fixture struct {
	RankID         uuid.UUID
	CollaboratorID domain.CollaboratorID
	CandidateID    domain.CandidateID
	JobID          domain.JobID
}

func insertID(t *testing.T, db *sql.DB, query string, args ...any) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	require.NoError(t, db.QueryRowContext(context.Background(), query, args...).Scan(&id))

	return id
}

func seedFixture(t *testing.T, pg *postgres.PgSQL) fixture {
	t.Helper()
	db := pg.DB.(*sql.DB)

	rankID := insertID(t, db, `INSERT INTO ranks(name, reward_percent) VALUES ('gold', 50) RETURNING id`)
	collaboratorID := insertID(t, db, `INSERT INTO collaborators(name, rank_id) VALUES ('alice', $1) RETURNING id`, rankID)
	candidateID := insertID(t, db,
		`INSERT INTO candidates(name, experience_years, jlpt_level) VALUES ('bob', 3.5, 2) RETURNING id`)
	jobID := insertID(t, db, `INSERT INTO jobs(title, commission_kind) VALUES ('engineer', 'percent') RETURNING id`)

	return fixture{
		RankID:         rankID,
		CollaboratorID: domain.CollaboratorID(collaboratorID),
		CandidateID:    domain.CandidateID(candidateID),
		JobID:          domain.JobID(jobID),
	}
}

func seedPlacement(t *testing.T,
	pg *postgres.PgSQL,
	f fixture,
	status domain.PlacementStatus,
	placedAt *time.Time) domain.PlacementID {
	t.Helper()
	id := insertID(t, pg.DB.(*sql.DB),
		`INSERT INTO placements(job_id, referrer_id, candidate_id, status, salary, placed_at)
		VALUES ($1, $2, $3, $4, 10000000, $5) RETURNING id`,
		uuid.UUID(f.JobID), uuid.UUID(f.CollaboratorID), uuid.UUID(f.CandidateID), int(status), placedAt)

	return domain.PlacementID(id)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
