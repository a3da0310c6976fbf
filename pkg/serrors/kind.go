// Package serrors attaches semantic kinds to errors. A kind survives any
// amount of fmt.Errorf wrapping and is what the HTTP layer maps to a status
// code, so packages below it never deal with transport concerns.
package serrors

import "errors"

// Kind is a semantic error category. Only NewKind creates values of it.
type Kind interface {
	error
	isKind()
}

type kind struct{ name string }

func (k kind) Error() string { return k.name }
func (kind) isKind()         {}

// NewKind returns a sentinel kind. Two kinds are equal only when they are the
// same value, so the name is only used for display and as the public error code.
func NewKind(name string) Kind { return &kind{name: name} }

// Generic kinds.
var (
	ErrNotFound     = NewKind("NOT_FOUND")
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	ErrForbidden    = NewKind("FORBIDDEN")
	ErrBadRequest   = NewKind("BAD_REQUEST")
	ErrConflict     = NewKind("CONFLICT")
	ErrInternal     = NewKind("INTERNAL")
	ErrTimeout      = NewKind("TIMEOUT")
	ErrUnavailable  = NewKind("UNAVAILABLE")
	ErrRateLimited  = NewKind("RATE_LIMITED")
)

// Scanning kinds.
var (
	// ErrQuotaExceeded means the account used up its scans for the current period.
	ErrQuotaExceeded = NewKind("QUOTA_EXCEEDED")
	// ErrDetectionUnavailable means the detector failed or did not answer in time.
	ErrDetectionUnavailable = NewKind("DETECTION_UNAVAILABLE")
	// ErrDeliveryFailed means a webhook endpoint did not acknowledge an event.
	ErrDeliveryFailed = NewKind("DELIVERY_FAILED")
)

// KindOf returns the outermost kind found in err's chain, or nil when err
// carries none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}
