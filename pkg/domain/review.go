package domain

import (
	"fmt"
	"time"
)

// Verdict is the outcome of a manual review.
type Verdict string

const (
	VerdictConfirmed     Verdict = "confirmed"
	VerdictFalsePositive Verdict = "false_positive"
	VerdictUncertain     Verdict = "uncertain"
)

// ParseVerdict converts a raw string into a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch v := Verdict(s); v {
	case VerdictConfirmed, VerdictFalsePositive, VerdictUncertain:
		return v, nil
	default:
		return "", fmt.Errorf("unknown verdict %q", s)
	}
}

// ReviewDecision records a reviewer's verdict on a scan. It is immutable and
// there is at most one per scan.
type ReviewDecision struct {
	ScanID   ScanID  `json:"scanId"`
	Verdict  Verdict `json:"verdict"`
	Notes    string  `json:"notes"`
	Reviewer string  `json:"reviewer"`

	DecidedAt time.Time `json:"decidedAt"`
}
