package review

import (
	"context"
	"iter"

	"scanguard/pkg/domain"
)

// Decision is a reviewer's verdict on a pending scan.
type Decision struct {
	ScanID   domain.ScanID
	Verdict  domain.Verdict
	Notes    string
	Reviewer string
}

// Queue holds scans awaiting a human verdict.
//
//go:generate mockgen -package mockreview -source=interface.go -destination=mock/mockreview.go *
type Queue interface {
	// ListPending yields pending_review scans oldest first. The sequence is
	// lazy and can be ranged over again to restart from the oldest scan.
	// Iteration stops after yielding a non-nil error.
	ListPending(ctx context.Context) iter.Seq2[domain.Scan, error]
	// SubmitDecision resolves a pending scan and enqueues its review.completed event.
	SubmitDecision(ctx context.Context, decision Decision) (*domain.Scan, *domain.ReviewDecision, error)
}
