package webhook

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff computes the wait before the next delivery attempt.
type Backoff struct {
	// Base is the delay after the first failed attempt.
	Base time.Duration
	// Factor multiplies the delay after each further failure.
	Factor float64
	// Jitter returns a random value in [0, 1). Nil uses math/rand/v2.
	Jitter func() float64
}

// Delay returns the wait after the given number of failed attempts (1-based).
// The result is Base*Factor^(attempt-1) plus up to half of that as jitter, so
// consecutive delays strictly increase for any Factor >= 2.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := float64(b.Base) * math.Pow(b.Factor, float64(attempt-1))

	jitter := b.Jitter
	if jitter == nil {
		jitter = rand.Float64 //nolint: gosec
	}
	d += d / 2 * jitter()

	if d > math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(d)
}
