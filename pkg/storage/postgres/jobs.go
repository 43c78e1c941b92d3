package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// newInserter creates an insert-only River client bound to db. It has no
// queues or workers and is only used to enqueue jobs.
func newInserter(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a new River job.
//
// Inside a transaction (DB is a *sql.Tx) the job is inserted with InsertTx so
// it only becomes visible once the surrounding transaction commits. Otherwise
// it is inserted directly through the pool.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.Inserter == nil {
		return false, fmt.Errorf("could not insert job: %w", errNoInserter)
	}

	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err := p.Inserter.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

		return !res.UniqueSkippedAsDuplicate, nil
	}

	res, err := p.Inserter.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
