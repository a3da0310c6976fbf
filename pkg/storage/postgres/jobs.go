package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

var errNoJobClient = errors.New("job client is not configured")

// jobInserter holds the insert-only River clients used by AddJob.
type jobInserter struct {
	db *river.Client[*sql.Tx]
	tx *river.Client[*sql.Tx]
}

func newJobInserter(db *sql.DB) (*jobInserter, error) {
	dbClient, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}
	txClient, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return &jobInserter{db: dbClient, tx: txClient}, nil
}

// AddJob enqueues a new River job using the underlying database handle.
//
// Inside a transaction (DB is a *sql.Tx) the job is inserted with InsertTx so
// it only becomes visible once the surrounding transaction commits. Outside a
// transaction the insert is immediately visible.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if p.jobs == nil {
		return false, fmt.Errorf("could not insert job: %w", errNoJobClient)
	}

	if tx, ok := p.DB.(*sql.Tx); ok {
		job, err := p.jobs.tx.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, fmt.Errorf("could not insert job: %w", err)
		}

		return !job.UniqueSkippedAsDuplicate, nil
	}

	job, err := p.jobs.db.Insert(ctx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
