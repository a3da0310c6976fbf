package orchestrator

import (
	"context"

	"scanguard/internal/account"
	"scanguard/pkg/domain"
)

// Request is a scan submission.
type Request struct {
	URL    string
	Source string
}

// Result is the outcome of a successful submission.
type Result struct {
	// Scan is in its routed status: completed or pending_review.
	Scan *domain.Scan
	// Admission carries the account's remaining quota after this scan.
	Admission *account.Admission
}

// ReviewPending reports whether the scan waits for a reviewer.
func (r *Result) ReviewPending() bool {
	return r.Scan.Status == domain.ScanStatusPendingReview
}

// Orchestrator drives scans from submission to their routed status.
//
//go:generate mockgen -package mockorchestrator -source=interface.go -destination=mock/mockorchestrator.go *
type Orchestrator interface {
	// Submit admits, scores and routes a scan for the account owning apiKey.
	Submit(ctx context.Context, apiKey string, req Request) (*Result, error)
	// Scan returns a scan owned by the account behind apiKey.
	Scan(ctx context.Context, apiKey string, scanID domain.ScanID) (*domain.Scan, error)
}
