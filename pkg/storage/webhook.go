package storage

import (
	"context"
	"scanguard/pkg/domain"
	"time"
)

// WebhookEventUpdate carries the delivery bookkeeping written after an attempt.
type WebhookEventUpdate struct {
	Status        domain.WebhookEventStatus
	AttemptCount  int
	NextAttemptAt time.Time
	// LastError is stored as NULL when empty.
	LastError string
	// DeliveredAt is only written when non-zero.
	DeliveredAt time.Time
}

// WebhookEventStorage persists outbound webhook events.
type WebhookEventStorage interface {
	// StoreWebhookEvents inserts events. Events that collide with an existing
	// (scan_id, event_type) are skipped; only the inserted rows are returned.
	StoreWebhookEvents(ctx context.Context, events ...domain.WebhookEvent) ([]domain.WebhookEvent, error)
	// WebhookEventByID returns the event with the given ID, or nil when not found.
	WebhookEventByID(ctx context.Context, ID domain.WebhookEventID) (*domain.WebhookEvent, error)
	// HasPendingPredecessor reports whether an earlier event of the same scan is still pending.
	HasPendingPredecessor(ctx context.Context, event domain.WebhookEvent) (bool, error)
	// UpdatePendingWebhookEvent applies update only while the event is still
	// pending. It reports whether the row was updated.
	UpdatePendingWebhookEvent(ctx context.Context, ID domain.WebhookEventID, update WebhookEventUpdate) (bool, error)
	// CancelPendingWebhookEvents marks all pending events of an account as
	// cancelled and returns how many were affected.
	CancelPendingWebhookEvents(ctx context.Context, accountID domain.AccountID) (int64, error)
	// WebhookEventsByStatus returns up to limit events in the given status, newest first.
	WebhookEventsByStatus(ctx context.Context, status domain.WebhookEventStatus, limit uint) ([]domain.WebhookEvent, error)
	// RequeueWebhookEvent moves a dead-lettered event back to pending with a
	// fresh attempt budget. It returns nil when the event is not dead-lettered.
	RequeueWebhookEvent(ctx context.Context, ID domain.WebhookEventID) (*domain.WebhookEvent, error)
}
