package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// String returns the canonical textual form of the scan ID.
func (id ScanID) String() string { return uuid.UUID(id).String() }

// ScanStatus represents the lifecycle state of a scan.
type ScanStatus string

const (
	// ScanStatusReceived indicates the scan was admitted and is awaiting a score.
	ScanStatusReceived ScanStatus = "received"
	// ScanStatusScored indicates a score was recorded but routing has not happened yet.
	ScanStatusScored ScanStatus = "scored"
	// ScanStatusCompleted is terminal: the score is the final result.
	ScanStatusCompleted ScanStatus = "completed"
	// ScanStatusPendingReview indicates the scan waits for a reviewer's verdict.
	ScanStatusPendingReview ScanStatus = "pending_review"
	// ScanStatusResolved is terminal: a reviewer decided on the scan.
	ScanStatusResolved ScanStatus = "resolved"
)

const (
	// ReviewThreshold is the score above which a scan counts as flagged.
	ReviewThreshold = 0.6
	// HighSeverityThreshold is the score above which a flagged scan is high severity.
	HighSeverityThreshold = 0.8
)

// scanTransitions is the only place allowed status moves are defined.
var scanTransitions = map[ScanStatus][]ScanStatus{ //nolint: gochecknoglobals
	ScanStatusReceived:      {ScanStatusScored},
	ScanStatusScored:        {ScanStatusCompleted, ScanStatusPendingReview},
	ScanStatusPendingReview: {ScanStatusResolved},
}

// Valid reports whether s is a known status.
func (s ScanStatus) Valid() bool {
	switch s {
	case ScanStatusReceived, ScanStatusScored, ScanStatusCompleted, ScanStatusPendingReview, ScanStatusResolved:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is a legal forward step.
func (s ScanStatus) CanTransitionTo(next ScanStatus) bool {
	for _, allowed := range scanTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s ScanStatus) Terminal() bool {
	return s == ScanStatusCompleted || s == ScanStatusResolved
}

// Route decides the post-scoring status of a scan with the given score that
// belongs to an account of the given tier.
func Route(score float64, tier Tier) ScanStatus {
	if score > ReviewThreshold && tier.ReviewEligible() {
		return ScanStatusPendingReview
	}

	return ScanStatusCompleted
}

// Scan represents a single evaluation request for a URL and its current state.
type Scan struct {
	// ID is the unique identifier of the scan.
	ID ScanID `json:"scanId"`
	// AccountID is the owner of the scan.
	AccountID AccountID `json:"accountId"`

	// URL is the evaluated target.
	URL string `json:"url"`
	// Source is an optional client-provided origin tag.
	Source string `json:"source,omitempty"`

	// Score is nil until the scan is scored. It is write-once.
	Score *float64 `json:"score"`
	// Flags are set together with Score and are write-once.
	Flags []string `json:"flags"`

	Status ScanStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// ResolvedAt is set when a reviewer resolved the scan; zero value means unset.
	ResolvedAt time.Time `json:"resolvedAt"`
}

// Flagged reports whether the scan scored above the review threshold.
func (s *Scan) Flagged() bool {
	return s.Score != nil && *s.Score > ReviewThreshold
}

// Severity classifies a flagged scan.
func (s *Scan) Severity() string {
	if s.Score != nil && *s.Score > HighSeverityThreshold {
		return "high"
	}

	return "medium"
}
