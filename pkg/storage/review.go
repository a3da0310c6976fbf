package storage

import (
	"context"
	"scanguard/pkg/domain"
)

// ReviewStorage persists reviewer decisions.
type ReviewStorage interface {
	// StoreReviewDecision inserts a decision. It returns ErrDuplicate when the
	// scan already has one.
	StoreReviewDecision(ctx context.Context, decision domain.ReviewDecision) (*domain.ReviewDecision, error)
	// ReviewDecisionByScanID returns the decision for a scan, or nil when none exists.
	ReviewDecisionByScanID(ctx context.Context, scanID domain.ScanID) (*domain.ReviewDecision, error)
}
