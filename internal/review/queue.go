// Package review implements the manual review queue of flagged scans.
package review

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"go.uber.org/zap"

	"scanguard/internal/config"
	"scanguard/internal/webhook"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/metrics"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
)

const (
	defaultPageSize = 50
	maxNotesLength  = 4096
)

// Options configure the review queue.
type Options struct {
	// PageSize is the number of scans fetched per storage round trip by ListPending.
	PageSize uint
	// Now returns the current time. Nil uses time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PageSize: uint(max(cfg.Review.PageSize, 1)), //nolint: gosec
	}
}

type queue struct {
	options     Options
	storage     storage.Storage
	dispatcher  webhook.Dispatcher
	instruments *metrics.Instruments
}

// New creates a review Queue.
func New(storage storage.Storage,
	dispatcher webhook.Dispatcher,
	instruments *metrics.Instruments,
	options Options) Queue {
	if options.PageSize == 0 {
		options.PageSize = defaultPageSize
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if instruments == nil {
		instruments = metrics.Noop()
	}

	return &queue{
		options:     options,
		storage:     storage,
		dispatcher:  dispatcher,
		instruments: instruments,
	}
}

func (q *queue) ListPending(ctx context.Context) iter.Seq2[domain.Scan, error] {
	return func(yield func(domain.Scan, error) bool) {
		var cursor *storage.ScanCursor
		for {
			page, err := q.storage.PendingReviewScans(ctx, cursor, q.options.PageSize)
			if err != nil {
				yield(domain.Scan{}, fmt.Errorf("could not get pending scans: %w", err))

				return
			}

			for _, scan := range page {
				if !yield(scan, nil) {
					return
				}
			}
			if uint(len(page)) < q.options.PageSize {
				return
			}

			last := page[len(page)-1]
			cursor = &storage.ScanCursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}
}

func (q *queue) SubmitDecision(ctx context.Context,
	decision Decision) (*domain.Scan, *domain.ReviewDecision, error) {
	verdict, err := domain.ParseVerdict(string(decision.Verdict))
	if err != nil {
		return nil, nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid verdict")
	}
	if len(decision.Notes) > maxNotesLength {
		return nil, nil, serrors.With(serrors.ErrBadRequest, "notes must be at most %d bytes", maxNotesLength)
	}
	reviewer := strings.TrimSpace(decision.Reviewer)
	if reviewer == "" {
		return nil, nil, serrors.With(serrors.ErrForbidden, "reviewer identity is required")
	}

	var (
		resolved *domain.Scan
		stored   *domain.ReviewDecision
	)
	err = q.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.ReviewDecisionByScanID(ctx, decision.ScanID)
		if err != nil {
			return fmt.Errorf("could not get review decision: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "scan already resolved")
		}

		scan, err := tx.ScanByID(ctx, decision.ScanID)
		if err != nil {
			return fmt.Errorf("could not get scan: %w", err)
		}
		if scan != nil && scan.Status == domain.ScanStatusResolved {
			// a concurrent decision committed after the lookup above
			return serrors.With(serrors.ErrConflict, "scan already resolved")
		}
		if scan == nil || scan.Status != domain.ScanStatusPendingReview {
			return serrors.With(serrors.ErrNotFound, "no pending review for scan")
		}
		if !scan.Status.CanTransitionTo(domain.ScanStatusResolved) {
			return serrors.With(serrors.ErrConflict, "scan cannot be resolved from %s", scan.Status)
		}

		// the compare-and-set makes a concurrent reviewer lose here
		resolved, err = tx.TransitionScan(ctx, scan.ID, domain.ScanStatusPendingReview, domain.ScanStatusResolved)
		if err != nil {
			return fmt.Errorf("could not resolve scan: %w", err)
		}
		if resolved == nil {
			return serrors.With(serrors.ErrConflict, "scan already resolved")
		}

		stored, err = tx.StoreReviewDecision(ctx, domain.ReviewDecision{
			ScanID:    scan.ID,
			Verdict:   verdict,
			Notes:     decision.Notes,
			Reviewer:  reviewer,
			DecidedAt: q.options.Now(),
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "scan already resolved")
			}

			return fmt.Errorf("could not store review decision: %w", err)
		}

		owner, err := tx.AccountByID(ctx, resolved.AccountID)
		if err != nil {
			return fmt.Errorf("could not get account: %w", err)
		}
		if owner == nil || !owner.HasWebhook() {
			return nil
		}
		if _, err := q.dispatcher.Enqueue(ctx, tx, webhook.NewReviewCompleted(resolved, stored, q.options.Now())); err != nil {
			return fmt.Errorf("could not enqueue event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not submit decision: %w", err)
	}

	q.instruments.ReviewDecided(ctx, string(verdict))
	logger.Info(ctx, "Review decision submitted",
		zap.Stringer("scan_id", resolved.ID),
		zap.String("verdict", string(verdict)),
		zap.String("reviewer", reviewer))

	return resolved, stored, nil
}
