package storage

import (
	"context"
	"scanguard/pkg/domain"
	"time"
)

// ScanCursor is a keyset position in the (created_at, id) ordering of scans.
type ScanCursor struct {
	CreatedAt time.Time
	ID        domain.ScanID
}

// ScanStorage persists scans and enforces their state transitions with
// compare-and-set updates.
type ScanStorage interface {
	// StoreScan inserts a new scan and returns the stored row including generated fields.
	StoreScan(ctx context.Context, scan domain.Scan) (*domain.Scan, error)
	// ScanByID returns the scan with the given ID, or nil when not found.
	ScanByID(ctx context.Context, ID domain.ScanID) (*domain.Scan, error)
	// RecordScore writes score and flags and moves the scan from received to
	// scored. Score and flags are write-once: nil is returned when the scan is
	// not in received state or already has a score.
	RecordScore(ctx context.Context, ID domain.ScanID, score float64, flags []string) (*domain.Scan, error)
	// TransitionScan moves a scan from one status to another only if its
	// current status equals from. It returns nil when the guard did not match.
	TransitionScan(ctx context.Context, ID domain.ScanID, from, to domain.ScanStatus) (*domain.Scan, error)
	// DeleteReceivedScan removes a scan that never got past received. It
	// reports whether a row was removed.
	DeleteReceivedScan(ctx context.Context, ID domain.ScanID) (bool, error)
	// PendingReviewScans returns up to limit scans in pending_review ordered by
	// (created_at, id) ascending, strictly after the optional cursor.
	PendingReviewScans(ctx context.Context, after *ScanCursor, limit uint) ([]domain.Scan, error)
}
