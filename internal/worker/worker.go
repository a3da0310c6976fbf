// Package worker runs the background jobs of the service on River: webhook
// deliveries and the monthly usage reset.
package worker

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"scanguard/internal/account"
	"scanguard/internal/config"
	"scanguard/internal/webhook"
	"scanguard/pkg/logger"
)

// Options configure the River client.
type Options struct {
	// DefaultWorkers is the concurrency of the default queue.
	DefaultWorkers int
	// WebhookWorkers is the number of concurrent webhook deliveries.
	WebhookWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultWorkers: 1,
		WebhookWorkers: cfg.Webhook.MaxWorkers,
	}
}

func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	dispatcher webhook.Dispatcher,
	registry account.Registry,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewDeliveryWorker(dispatcher))
	river.AddWorker(workers, NewUsageResetWorker(registry))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(options.DefaultWorkers, 1)},
			webhook.QueueName:  {MaxWorkers: max(options.WebhookWorkers, 1)},
		},
		Workers:      workers,
		PeriodicJobs: []*river.PeriodicJob{UsageResetPeriodicJob()},
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
