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
	webhookEventsTable = "webhook_events"
)

func (p *PgSQL) StoreWebhookEvents(ctx context.Context, events ...domain.WebhookEvent) ([]domain.WebhookEvent, error) {
	if len(events) == 0 {
		return nil, nil
	}

	rows := make([]PgWebhookEvent, len(events))
	for i := range events {
		rows[i].FromDomain(events[i])
	}

	var stored []PgWebhookEvent
	if err := p.Builder.Insert(webhookEventsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Returning(&PgWebhookEvent{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store webhook events into pg: %w", err)
	}

	return pgWebhookEventsToDomain(stored), nil
}

func (p *PgSQL) WebhookEventByID(ctx context.Context, id domain.WebhookEventID) (*domain.WebhookEvent, error) {
	var row PgWebhookEvent
	found, err := p.Builder.From(webhookEventsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get webhook event from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) HasPendingPredecessor(ctx context.Context, event domain.WebhookEvent) (bool, error) {
	n, err := p.Builder.From(webhookEventsTable).
		Where(
			goqu.I("scan_id").Eq(uuid.UUID(event.ScanID)),
			goqu.I("seq").Lt(event.Sequence),
			goqu.I("status").Eq(string(domain.WebhookEventPending)),
		).CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count pending webhook events in pg: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) UpdatePendingWebhookEvent(ctx context.Context,
	id domain.WebhookEventID,
	update storage.WebhookEventUpdate) (bool, error) {
	rec := goqu.Record{
		"status":          string(update.Status),
		"attempt_count":   update.AttemptCount,
		"next_attempt_at": update.NextAttemptAt,
		"last_error":      nullString(update.LastError),
	}
	if !update.DeliveredAt.IsZero() {
		rec["delivered_at"] = update.DeliveredAt
	}

	res, err := p.Builder.Update(webhookEventsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.WebhookEventPending)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not update webhook event in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) CancelPendingWebhookEvents(ctx context.Context, accountID domain.AccountID) (int64, error) {
	res, err := p.Builder.Update(webhookEventsTable).
		Set(goqu.Record{"status": string(domain.WebhookEventCancelled)}).
		Where(
			goqu.I("account_id").Eq(uuid.UUID(accountID)),
			goqu.I("status").Eq(string(domain.WebhookEventPending)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not cancel webhook events in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return n, nil
}

func (p *PgSQL) WebhookEventsByStatus(ctx context.Context,
	status domain.WebhookEventStatus,
	limit uint) ([]domain.WebhookEvent, error) {
	var rows []PgWebhookEvent
	if err := p.Builder.From(webhookEventsTable).
		Where(goqu.I("status").Eq(string(status))).
		Order(goqu.I("created_at").Desc(), goqu.I("seq").Desc()).
		Limit(limit).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch webhook events from pg: %w", err)
	}

	return pgWebhookEventsToDomain(rows), nil
}

func (p *PgSQL) RequeueWebhookEvent(ctx context.Context, id domain.WebhookEventID) (*domain.WebhookEvent, error) {
	var row PgWebhookEvent
	found, err := p.Builder.Update(webhookEventsTable).
		Set(goqu.Record{
			"status":          string(domain.WebhookEventPending),
			"attempt_count":   0,
			"next_attempt_at": goqu.L("CURRENT_TIMESTAMP"),
			"last_error":      goqu.L("NULL"),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.WebhookEventDeadLettered)),
		).
		Returning(&PgWebhookEvent{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not requeue webhook event in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
