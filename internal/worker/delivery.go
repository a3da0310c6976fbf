package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"scanguard/internal/webhook"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"
)

// DeliveryWorker is a River worker that makes one delivery attempt per run.
// A retry is mapped to a snooze of the backoff delay. A cancelled or unknown
// event cancels the job. When the last River attempt fails the event is
// dead-lettered so later events of its scan are not held back.
type DeliveryWorker struct {
	river.WorkerDefaults[webhook.JobArgs]

	dispatcher webhook.Dispatcher
}

// NewDeliveryWorker constructs a DeliveryWorker using the provided dispatcher.
func NewDeliveryWorker(dispatcher webhook.Dispatcher) *DeliveryWorker {
	return &DeliveryWorker{dispatcher: dispatcher}
}

func (w *DeliveryWorker) Work(ctx context.Context, job *river.Job[webhook.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("eventID", job.Args.EventID))

	err := w.dispatcher.Deliver(ctx, domain.WebhookEventID(job.Args.EventID))
	if err == nil {
		return nil
	}

	var retry *webhook.RetryError
	switch {
	case errors.As(err, &retry):
		return river.JobSnooze(retry.Delay) //nolint: wrapcheck
	case errors.Is(err, webhook.ErrCancelled), errors.Is(err, serrors.ErrNotFound):
		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error in delivering webhook event", zap.Error(err), zap.Int("jobAttempt", job.Attempt))
	err = fmt.Errorf("could not deliver webhook event %s: %w", job.Args.EventID, err)

	if job.MaxAttempts > 0 && job.Attempt >= job.MaxAttempts {
		if abandonErr := w.dispatcher.Abandon(ctx, domain.WebhookEventID(job.Args.EventID), err); abandonErr != nil {
			logger.Error(ctx, "could not dead-letter abandoned webhook event", zap.Error(abandonErr))

			return errors.Join(err, abandonErr)
		}

		return river.JobCancel(err) //nolint: wrapcheck
	}

	return err
}
