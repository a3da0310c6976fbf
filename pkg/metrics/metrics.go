// Package metrics defines the OpenTelemetry instruments recorded by the scan
// lifecycle. Instruments are exported through the Prometheus exporter wired in
// the API server.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "scanguard"

// Scan outcomes recorded by ScanSubmitted.
const (
	OutcomeCompleted     = "completed"
	OutcomePendingReview = "pending_review"
	OutcomeQuotaExceeded = "quota_exceeded"
	OutcomeDetectionFail = "detection_unavailable"
	OutcomeRejected      = "rejected"
)

// Delivery outcomes recorded by WebhookAttempt.
const (
	DeliveryDelivered = "delivered"
	DeliveryFailed    = "failed"
	DeliveryDeferred  = "deferred"
	DeliveryCancelled = "cancelled"
)

// Instruments groups every instrument the service records.
type Instruments struct {
	scans          metric.Int64Counter
	flagged        metric.Int64Counter
	detection      metric.Float64Histogram
	webhookAttempt metric.Int64Counter
	deadLetters    metric.Int64Counter
	reviews        metric.Int64Counter
}

// New creates the instruments on a meter obtained from provider.
func New(provider metric.MeterProvider) (*Instruments, error) {
	meter := provider.Meter(meterName)

	scans, err := meter.Int64Counter("scanguard.scans",
		metric.WithDescription("Scan submissions by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create scans counter: %w", err)
	}
	flagged, err := meter.Int64Counter("scanguard.scans.flagged",
		metric.WithDescription("Scans scoring above the review threshold, by tier."))
	if err != nil {
		return nil, fmt.Errorf("could not create flagged counter: %w", err)
	}
	detection, err := meter.Float64Histogram("scanguard.detection.duration",
		metric.WithDescription("Latency of detection calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create detection histogram: %w", err)
	}
	webhookAttempt, err := meter.Int64Counter("scanguard.webhook.attempts",
		metric.WithDescription("Webhook delivery attempts by event type and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create webhook attempts counter: %w", err)
	}
	deadLetters, err := meter.Int64Counter("scanguard.webhook.dead_letters",
		metric.WithDescription("Webhook events that exhausted every delivery attempt."))
	if err != nil {
		return nil, fmt.Errorf("could not create dead letters counter: %w", err)
	}
	reviews, err := meter.Int64Counter("scanguard.reviews",
		metric.WithDescription("Reviewer decisions by verdict."))
	if err != nil {
		return nil, fmt.Errorf("could not create reviews counter: %w", err)
	}

	return &Instruments{
		scans:          scans,
		flagged:        flagged,
		detection:      detection,
		webhookAttempt: webhookAttempt,
		deadLetters:    deadLetters,
		reviews:        reviews,
	}, nil
}

// Noop returns instruments that record nothing. Used by tests and commands
// that do not expose metrics.
func Noop() *Instruments {
	i, _ := New(noop.NewMeterProvider())

	return i
}

func (i *Instruments) ScanSubmitted(ctx context.Context, tier, outcome string) {
	i.scans.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tier", tier),
		attribute.String("outcome", outcome),
	))
}

func (i *Instruments) ScanFlagged(ctx context.Context, tier string) {
	i.flagged.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier)))
}

func (i *Instruments) DetectionDuration(ctx context.Context, d time.Duration, success bool) {
	i.detection.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.Bool("success", success)))
}

func (i *Instruments) WebhookAttempt(ctx context.Context, eventType, outcome string) {
	i.webhookAttempt.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", eventType),
		attribute.String("outcome", outcome),
	))
}

func (i *Instruments) DeadLettered(ctx context.Context, eventType string) {
	i.deadLetters.Add(ctx, 1, metric.WithAttributes(attribute.String("event", eventType)))
}

func (i *Instruments) ReviewDecided(ctx context.Context, verdict string) {
	i.reviews.Add(ctx, 1, metric.WithAttributes(attribute.String("verdict", verdict)))
}
