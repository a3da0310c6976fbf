package postgres

import (
	"context"
	"fmt"
	"scanguard/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	accountsTable = "accounts"
)

func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var row PgAccount
	row.FromDomain(account)

	var stored PgAccount
	if _, err := p.Builder.Insert(accountsTable).
		Rows(row).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store account into pg: %w", wrapUniqueViolation(err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) accountBy(ctx context.Context, where goqu.Expression) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(where).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get account from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AccountByAPIKey(ctx context.Context, apiKey string) (*domain.Account, error) {
	return p.accountBy(ctx, goqu.I("api_key").Eq(apiKey))
}

func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	return p.accountBy(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// IncrementUsage relies on a single conditional UPDATE: Postgres re-checks the
// WHERE clause after acquiring the row lock, so concurrent callers can never
// push scans_used past scans_limit.
func (p *PgSQL) IncrementUsage(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"scans_used":  goqu.L("scans_used + 1"),
			"total_scans": goqu.L("total_scans + 1"),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("active").IsTrue(),
			goqu.Or(
				goqu.I("scans_limit").Lt(0),
				goqu.I("scans_used").Lt(goqu.I("scans_limit")),
			),
		).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not increment account usage in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DecrementUsage(ctx context.Context, id domain.AccountID) error {
	_, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"scans_used":  goqu.L("GREATEST(scans_used - 1, 0)"),
			"total_scans": goqu.L("GREATEST(total_scans - 1, 0)"),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not decrement account usage in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) SetWebhook(ctx context.Context, id domain.AccountID, url string, secret string) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"webhook_url":    nullString(url),
			"webhook_secret": nullString(secret),
			"updated_at":     goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not set account webhook in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ResetUsage(ctx context.Context, periodStart time.Time) (int64, error) {
	res, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"scans_used":   0,
			"period_start": periodStart,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("period_start").Lt(periodStart)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not reset account usage in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}
