// Package detector defines the contract of the scoring backend that rates how
// likely a URL's content is manipulated, and the data types it returns.
package detector

import (
	"context"
)

// Result is the outcome of a detection call.
type Result struct {
	Score float64  // Score is the manipulation likelihood in [0, 1].
	Flags []string // Flags are machine readable reasons behind the score.
}

// Client is the abstraction for detection backends. Implementations must be
// safe for concurrent use and honour ctx cancellation.
//
//go:generate mockgen -package mockdetector -source=interface.go -destination=mock/mockdetector.go *
type Client interface {
	// Detect scores the content behind URL. source is an optional tag
	// describing where the client found the URL.
	Detect(ctx context.Context, URL string, source string) (Result, error)
}
