// Package orchestrator implements the scan lifecycle: quota admission,
// detection, review routing and lifecycle event enqueueing.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"scanguard/internal/account"
	"scanguard/internal/config"
	"scanguard/internal/webhook"
	"scanguard/pkg/detector"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
	"scanguard/pkg/urlnorm"
)

const tracerName = "scanguard/internal/orchestrator"

// Options configure the orchestrator.
type Options struct {
	// DetectionTimeout bounds a single detection call.
	DetectionTimeout time.Duration
	// Now returns the current time. Nil uses time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DetectionTimeout: cfg.Detector.Timeout,
	}
}

type orchestrator struct {
	options     Options
	storage     storage.Storage
	registry    account.Registry
	detector    detector.Client
	dispatcher  webhook.Dispatcher
	instruments *metrics.Instruments
}

// New creates an Orchestrator.
func New(storage storage.Storage,
	registry account.Registry,
	detector detector.Client,
	dispatcher webhook.Dispatcher,
	instruments *metrics.Instruments,
	options Options) Orchestrator {
	if options.Now == nil {
		options.Now = time.Now
	}
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &orchestrator{
		options:     options,
		storage:     storage,
		registry:    registry,
		detector:    detector,
		dispatcher:  dispatcher,
		instruments: instruments,
	}
}

func (o *orchestrator) Submit(ctx context.Context, apiKey string, req Request) (_ *Result, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scan.submit")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	URL, err := urlnorm.Normalize(req.URL)
	if err != nil {
		o.instruments.ScanSubmitted(ctx, "", metrics.OutcomeRejected)

		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	admission, err := o.registry.TryAdmit(ctx, apiKey)
	if err != nil {
		if errors.Is(err, serrors.ErrQuotaExceeded) {
			o.instruments.ScanSubmitted(ctx, "", metrics.OutcomeQuotaExceeded)
		}

		return nil, err
	}
	tier := admission.Account.Tier
	ctx = logger.WithFields(ctx, zap.Stringer("account_id", admission.Account.ID))

	scan, err := o.storage.StoreScan(ctx, domain.Scan{
		AccountID: admission.Account.ID,
		URL:       URL,
		Source:    req.Source,
		Status:    domain.ScanStatusReceived,
	})
	if err != nil {
		o.release(ctx, apiKey, nil)

		return nil, fmt.Errorf("could not store scan: %w", err)
	}
	ctx = logger.WithFields(ctx, zap.Stringer("scan_id", scan.ID))
	span.SetAttributes(attribute.String("scan.id", scan.ID.String()), attribute.String("account.tier", string(tier)))

	res, err := o.detect(ctx, scan)
	if err != nil {
		o.release(ctx, apiKey, scan)
		o.instruments.ScanSubmitted(ctx, string(tier), metrics.OutcomeDetectionFail)
		logger.Warn(ctx, "Detection failed", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrDetectionUnavailable, err, "detection service unavailable")
	}

	routed, err := o.route(ctx, scan.ID, res, admission.Account)
	if err != nil {
		o.release(ctx, apiKey, scan)

		return nil, err
	}

	outcome := metrics.OutcomeCompleted
	if routed.Status == domain.ScanStatusPendingReview {
		outcome = metrics.OutcomePendingReview
	}
	o.instruments.ScanSubmitted(ctx, string(tier), outcome)
	if routed.Flagged() {
		o.instruments.ScanFlagged(ctx, string(tier))
	}

	logger.Info(ctx, "Scan routed",
		zap.Float64("score", res.Score),
		zap.String("status", string(routed.Status)))

	return &Result{Scan: routed, Admission: admission}, nil
}

func (o *orchestrator) detect(ctx context.Context, scan *domain.Scan) (detector.Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "scan.detect", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	if o.options.DetectionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.options.DetectionTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := o.detector.Detect(ctx, scan.URL, scan.Source)
	if err == nil && (math.IsNaN(res.Score) || res.Score < 0 || res.Score > 1) {
		err = fmt.Errorf("score %v out of range", res.Score)
	}
	o.instruments.DetectionDuration(ctx, time.Since(start), err == nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return detector.Result{}, fmt.Errorf("could not detect: %w", err)
	}
	if res.Flags == nil {
		res.Flags = []string{}
	}

	return res, nil
}

// route records the score and moves the scan to its post-scoring status in a
// single transaction together with the lifecycle events it emits.
func (o *orchestrator) route(ctx context.Context,
	scanID domain.ScanID,
	res detector.Result,
	owner *domain.Account) (*domain.Scan, error) {
	var routed *domain.Scan
	err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		scored, err := tx.RecordScore(ctx, scanID, res.Score, res.Flags)
		if err != nil {
			return fmt.Errorf("could not record score: %w", err)
		}
		if scored == nil {
			return serrors.With(serrors.ErrConflict, "scan %s is already scored", scanID)
		}

		next := domain.Route(res.Score, owner.Tier)
		if !scored.Status.CanTransitionTo(next) {
			return serrors.With(serrors.ErrConflict, "scan %s cannot move from %s to %s", scanID, scored.Status, next)
		}
		routed, err = tx.TransitionScan(ctx, scanID, scored.Status, next)
		if err != nil {
			return fmt.Errorf("could not transition scan: %w", err)
		}
		if routed == nil {
			return serrors.With(serrors.ErrConflict, "scan %s changed status concurrently", scanID)
		}

		if !owner.HasWebhook() {
			return nil
		}
		if _, err := o.dispatcher.Enqueue(ctx, tx, webhook.ScanEvents(routed, o.options.Now())...); err != nil {
			return fmt.Errorf("could not enqueue events: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not route scan: %w", err)
	}

	return routed, nil
}

// release compensates an admission whose scan did not make it past received.
// It runs even when ctx was cancelled.
func (o *orchestrator) release(ctx context.Context, apiKey string, scan *domain.Scan) {
	ctx = context.WithoutCancel(ctx)

	if scan != nil {
		if _, err := o.storage.DeleteReceivedScan(ctx, scan.ID); err != nil {
			logger.Error(ctx, "could not delete unscored scan", zap.Error(err))
		}
	}
	if err := o.registry.Release(ctx, apiKey); err != nil {
		logger.Error(ctx, "could not release quota", zap.Error(err))
	}
}

func (o *orchestrator) Scan(ctx context.Context, apiKey string, scanID domain.ScanID) (*domain.Scan, error) {
	owner, err := o.registry.Authenticate(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	scan, err := o.storage.ScanByID(ctx, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan: %w", err)
	}
	if scan == nil || scan.AccountID != owner.ID {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	return scan, nil
}
