package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"
	"scanguard/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	scansTable = "scans"
)

func (p *PgSQL) StoreScan(ctx context.Context, scan domain.Scan) (*domain.Scan, error) {
	var row PgScan
	if err := row.FromDomain(scan); err != nil {
		return nil, err
	}

	var stored PgScan
	if _, err := p.Builder.Insert(scansTable).
		Rows(row).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scan into pg: %w", err)
	}

	return stored.ToDomain()
}

func (p *PgSQL) ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error) {
	var row PgScan
	found, err := p.Builder.From(scansTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get scan from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// updateScan applies rec to the scan only when all guards hold and returns
// the updated row, or nil when nothing matched.
func (p *PgSQL) updateScan(ctx context.Context,
	id domain.ScanID,
	rec goqu.Record,
	guards ...goqu.Expression) (*domain.Scan, error) {
	rec["updated_at"] = goqu.L("CURRENT_TIMESTAMP")
	where := append([]goqu.Expression{goqu.I("id").Eq(uuid.UUID(id))}, guards...)

	var row PgScan
	found, err := p.Builder.Update(scansTable).
		Set(rec).
		Where(where...).
		Returning(&PgScan{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update scan in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) RecordScore(ctx context.Context,
	id domain.ScanID,
	score float64,
	flags []string) (*domain.Scan, error) {
	b, err := marshalFlags(flags)
	if err != nil {
		return nil, err
	}

	return p.updateScan(ctx, id, goqu.Record{
		"score":  score,
		"flags":  b,
		"status": string(domain.ScanStatusScored),
	},
		goqu.I("status").Eq(string(domain.ScanStatusReceived)),
		goqu.I("score").IsNull(),
	)
}

func (p *PgSQL) TransitionScan(ctx context.Context,
	id domain.ScanID,
	from, to domain.ScanStatus) (*domain.Scan, error) {
	rec := goqu.Record{"status": string(to)}
	if to == domain.ScanStatusResolved {
		rec["resolved_at"] = goqu.L("CURRENT_TIMESTAMP")
	}

	return p.updateScan(ctx, id, rec, goqu.I("status").Eq(string(from)))
}

func (p *PgSQL) DeleteReceivedScan(ctx context.Context, id domain.ScanID) (bool, error) {
	res, err := p.Builder.Delete(scansTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.ScanStatusReceived)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete scan from pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

// PendingReviewScans pages through pending scans by (created_at, id) so that
// scans sharing a timestamp are neither skipped nor repeated.
func (p *PgSQL) PendingReviewScans(ctx context.Context,
	after *storage.ScanCursor,
	limit uint) ([]domain.Scan, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.ScanStatusPendingReview)),
	}
	if after != nil {
		w = append(w, goqu.Or(
			goqu.I("created_at").Gt(after.CreatedAt),
			goqu.And(
				goqu.I("created_at").Eq(after.CreatedAt),
				goqu.I("id").Gt(uuid.UUID(after.ID)),
			),
		))
	}

	var rows []PgScan
	if err := p.Builder.From(scansTable).
		Where(w...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(limit).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch pending review scans from pg: %w", err)
	}

	return pgScansToDomain(rows)
}
