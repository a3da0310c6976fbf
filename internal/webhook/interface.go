package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scanguard/pkg/domain"
	"scanguard/pkg/storage"
)

// ErrCancelled is returned by Deliver when the event will never be delivered
// because its account no longer has a webhook.
var ErrCancelled = errors.New("webhook delivery cancelled")

// RetryError asks the caller to run Deliver again for the same event after Delay.
type RetryError struct {
	Delay time.Duration
	Err   error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("retry in %s: %v", e.Delay, e.Err)
}

func (e *RetryError) Unwrap() error { return e.Err }

// Sender performs a single delivery attempt.
//
//go:generate mockgen -package mockwebhook -source=interface.go -destination=mock/mockwebhook.go *
type Sender interface {
	Send(ctx context.Context, attempt Attempt) error
}

// Dispatcher stores lifecycle events and delivers them to account webhooks.
type Dispatcher interface {
	// Enqueue stores events and schedules their delivery using tx, which should
	// be the transaction that made the transition the events describe. Events
	// that already exist for their (scan, type) are skipped. It returns the
	// stored events.
	Enqueue(ctx context.Context, tx storage.AllStorage, events ...domain.WebhookEvent) ([]domain.WebhookEvent, error)
	// Deliver makes one delivery attempt of a pending event. A *RetryError
	// means another attempt is due later. ErrCancelled means the event was
	// cancelled. A nil error means the event reached a final state.
	Deliver(ctx context.Context, ID domain.WebhookEventID) error
	// Abandon dead-letters a pending event whose delivery job will not run
	// again, recording cause as its last error. Final events are left alone.
	Abandon(ctx context.Context, ID domain.WebhookEventID, cause error) error
	// DeadLetters returns up to limit dead-lettered events, newest first.
	DeadLetters(ctx context.Context, limit uint) ([]domain.WebhookEvent, error)
	// Redeliver moves a dead-lettered event back to pending with a fresh
	// attempt budget and schedules its delivery.
	Redeliver(ctx context.Context, ID domain.WebhookEventID) (*domain.WebhookEvent, error)
}
