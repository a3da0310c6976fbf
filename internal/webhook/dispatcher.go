// Package webhook stores scan lifecycle events and delivers them to the
// webhook endpoints accounts register, with exponential backoff, dead-lettering
// and per-scan ordering.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"scanguard/internal/config"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
)

const tracerName = "scanguard/internal/webhook"

// Options configure delivery attempts.
type Options struct {
	// MaxAttempts is the number of attempts before an event is dead-lettered.
	MaxAttempts int
	// Backoff computes the wait between attempts.
	Backoff Backoff
	// AttemptTimeout bounds a single attempt.
	AttemptTimeout time.Duration
	// OrderingDelay is how long an event waits for an earlier pending event of the same scan.
	OrderingDelay time.Duration
	// Now returns the current time. Nil uses time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Webhook.MaxAttempts,
		Backoff: Backoff{
			Base:   cfg.Webhook.BaseDelay,
			Factor: cfg.Webhook.Factor,
		},
		AttemptTimeout: cfg.Webhook.AttemptTimeout,
		OrderingDelay:  cfg.Webhook.OrderingDelay,
	}
}

type dispatcher struct {
	options     Options
	storage     storage.Storage
	sender      Sender
	instruments *metrics.Instruments
}

// New creates a Dispatcher that persists events in storage and delivers them with sender.
func New(storage storage.Storage, sender Sender, instruments *metrics.Instruments, options Options) Dispatcher {
	if options.Now == nil {
		options.Now = time.Now
	}
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &dispatcher{
		options:     options,
		storage:     storage,
		sender:      sender,
		instruments: instruments,
	}
}

func (d *dispatcher) Enqueue(ctx context.Context,
	tx storage.AllStorage,
	events ...domain.WebhookEvent) ([]domain.WebhookEvent, error) {
	if len(events) == 0 {
		return nil, nil
	}

	stored, err := tx.StoreWebhookEvents(ctx, events...)
	if err != nil {
		return nil, fmt.Errorf("could not store webhook events: %w", err)
	}

	for _, e := range stored {
		if _, err := tx.AddJob(ctx, JobArgs{EventID: uuid.UUID(e.ID)}, nil); err != nil {
			return nil, fmt.Errorf("could not add delivery job: %w", err)
		}
		logger.Debug(ctx, "Webhook event enqueued",
			zap.Stringer("event_id", e.ID),
			zap.String("event", string(e.Type)),
			zap.Stringer("scan_id", e.ScanID))
	}

	return stored, nil
}

func (d *dispatcher) Deliver(ctx context.Context, ID domain.WebhookEventID) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "webhook.deliver", trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil && !errors.As(err, new(*RetryError)) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	event, err := d.storage.WebhookEventByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get webhook event: %w", err)
	}
	if event == nil {
		return serrors.With(serrors.ErrNotFound, "webhook event %s not found", ID)
	}
	span.SetAttributes(
		attribute.String("webhook.event", string(event.Type)),
		attribute.String("scan.id", event.ScanID.String()),
		attribute.Int("webhook.attempt", event.AttemptCount+1))

	ctx = logger.WithFields(ctx,
		zap.Stringer("event_id", event.ID),
		zap.String("event", string(event.Type)),
		zap.Stringer("scan_id", event.ScanID))

	if event.Status.Final() {
		logger.Debug(ctx, "Webhook event already final", zap.String("status", string(event.Status)))

		return nil
	}

	account, err := d.storage.AccountByID(ctx, event.AccountID)
	if err != nil {
		return fmt.Errorf("could not get account: %w", err)
	}
	if account == nil || !account.Active || !account.HasWebhook() {
		return d.cancel(ctx, event)
	}

	waiting, err := d.storage.HasPendingPredecessor(ctx, *event)
	if err != nil {
		return fmt.Errorf("could not check event order: %w", err)
	}
	if waiting {
		d.instruments.WebhookAttempt(ctx, string(event.Type), metrics.DeliveryDeferred)

		return &RetryError{
			Delay: d.options.OrderingDelay,
			Err:   errors.New("an earlier event of the scan is still pending"),
		}
	}

	return d.attempt(ctx, event, account)
}

func (d *dispatcher) cancel(ctx context.Context, event *domain.WebhookEvent) error {
	if _, err := d.storage.UpdatePendingWebhookEvent(ctx, event.ID, storage.WebhookEventUpdate{
		Status:        domain.WebhookEventCancelled,
		AttemptCount:  event.AttemptCount,
		NextAttemptAt: event.NextAttemptAt,
		LastError:     event.LastError,
	}); err != nil {
		return fmt.Errorf("could not cancel webhook event: %w", err)
	}
	d.instruments.WebhookAttempt(ctx, string(event.Type), metrics.DeliveryCancelled)
	logger.Info(ctx, "Webhook event cancelled, account has no webhook")

	return ErrCancelled
}

func (d *dispatcher) attempt(ctx context.Context, event *domain.WebhookEvent, account *domain.Account) error {
	number := event.AttemptCount + 1

	attemptCtx := ctx
	if d.options.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, d.options.AttemptTimeout)
		defer cancel()
	}

	sendErr := d.sender.Send(attemptCtx, Attempt{
		Event:  *event,
		URL:    account.WebhookURL,
		Secret: account.WebhookSecret,
		Number: number,
	})
	now := d.options.Now()

	if sendErr == nil {
		updated, err := d.storage.UpdatePendingWebhookEvent(ctx, event.ID, storage.WebhookEventUpdate{
			Status:        domain.WebhookEventDelivered,
			AttemptCount:  number,
			NextAttemptAt: event.NextAttemptAt,
			DeliveredAt:   now,
		})
		if err != nil {
			return fmt.Errorf("could not mark webhook event delivered: %w", err)
		}
		d.instruments.WebhookAttempt(ctx, string(event.Type), metrics.DeliveryDelivered)
		if !updated {
			logger.Debug(ctx, "Webhook event delivered after it was cancelled")

			return nil
		}
		logger.Info(ctx, "Webhook event delivered", zap.Int("attempt", number))

		return nil
	}

	d.instruments.WebhookAttempt(ctx, string(event.Type), metrics.DeliveryFailed)
	lastError := serrors.Wrap(serrors.ErrDeliveryFailed, sendErr, "attempt %d failed", number).Error()

	if number >= d.options.MaxAttempts {
		if _, err := d.storage.UpdatePendingWebhookEvent(ctx, event.ID, storage.WebhookEventUpdate{
			Status:        domain.WebhookEventDeadLettered,
			AttemptCount:  number,
			NextAttemptAt: event.NextAttemptAt,
			LastError:     lastError,
		}); err != nil {
			return fmt.Errorf("could not dead-letter webhook event: %w", err)
		}
		d.instruments.DeadLettered(ctx, string(event.Type))
		logger.Error(ctx, "Webhook event dead-lettered",
			zap.Int("attempts", number),
			zap.Error(sendErr))

		return nil
	}

	delay := d.options.Backoff.Delay(number)
	updated, err := d.storage.UpdatePendingWebhookEvent(ctx, event.ID, storage.WebhookEventUpdate{
		Status:        domain.WebhookEventPending,
		AttemptCount:  number,
		NextAttemptAt: now.Add(delay),
		LastError:     lastError,
	})
	if err != nil {
		return fmt.Errorf("could not record failed attempt: %w", err)
	}
	if !updated {
		return ErrCancelled
	}
	logger.Warn(ctx, "Webhook delivery failed, will retry",
		zap.Int("attempt", number),
		zap.Duration("delay", delay),
		zap.Error(sendErr))

	return &RetryError{Delay: delay, Err: sendErr}
}

func (d *dispatcher) Abandon(ctx context.Context, ID domain.WebhookEventID, cause error) error {
	event, err := d.storage.WebhookEventByID(ctx, ID)
	if err != nil {
		return fmt.Errorf("could not get webhook event: %w", err)
	}
	if event == nil || event.Status.Final() {
		return nil
	}

	updated, err := d.storage.UpdatePendingWebhookEvent(ctx, event.ID, storage.WebhookEventUpdate{
		Status:        domain.WebhookEventDeadLettered,
		AttemptCount:  event.AttemptCount,
		NextAttemptAt: event.NextAttemptAt,
		LastError:     serrors.Wrap(serrors.ErrDeliveryFailed, cause, "delivery abandoned").Error(),
	})
	if err != nil {
		return fmt.Errorf("could not dead-letter webhook event: %w", err)
	}
	if !updated {
		return nil
	}
	d.instruments.DeadLettered(ctx, string(event.Type))
	logger.Error(ctx, "Webhook event dead-lettered after delivery job gave up",
		zap.Stringer("event_id", event.ID),
		zap.Int("attempts", event.AttemptCount),
		zap.Error(cause))

	return nil
}

func (d *dispatcher) DeadLetters(ctx context.Context, limit uint) ([]domain.WebhookEvent, error) {
	events, err := d.storage.WebhookEventsByStatus(ctx, domain.WebhookEventDeadLettered, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get dead-lettered events: %w", err)
	}

	return events, nil
}

func (d *dispatcher) Redeliver(ctx context.Context, ID domain.WebhookEventID) (*domain.WebhookEvent, error) {
	var event *domain.WebhookEvent
	if err := d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		requeued, err := tx.RequeueWebhookEvent(ctx, ID)
		if err != nil {
			return fmt.Errorf("could not requeue webhook event: %w", err)
		}
		if requeued == nil {
			return serrors.With(serrors.ErrNotFound, "dead-lettered event not found")
		}
		event = requeued

		if _, err := tx.AddJob(ctx, JobArgs{EventID: uuid.UUID(ID)}, nil); err != nil {
			return fmt.Errorf("could not add delivery job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not redeliver webhook event: %w", err)
	}

	logger.Info(ctx, "Webhook event requeued", zap.Stringer("event_id", ID))

	return event, nil
}
