// Package handler holds the wire encoders shared by the versioned API handlers.
package handler

import (
	"time"

	"github.com/go-faster/jx"

	"scanguard/pkg/domain"
)

// Unlimited is rendered in place of a count for accounts without a scan cap.
const Unlimited = "unlimited"

// EncodeTime writes t as RFC 3339 in UTC, or null when t is zero.
func EncodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339))
}

// EncodeCount writes n, or Unlimited when unlimited is set.
func EncodeCount(e *jx.Encoder, n int, unlimited bool) {
	if unlimited {
		e.Str(Unlimited)

		return
	}
	e.Int(n)
}

// EncodeFlags writes flags as an array, never null.
func EncodeFlags(e *jx.Encoder, flags []string) {
	e.ArrStart()
	for _, f := range flags {
		e.Str(f)
	}
	e.ArrEnd()
}

// EncodeScan writes the public representation of a scan.
func EncodeScan(e *jx.Encoder, scan *domain.Scan) {
	e.ObjStart()
	e.FieldStart("scan_id")
	e.Str(scan.ID.String())
	e.FieldStart("url")
	e.Str(scan.URL)
	if scan.Source != "" {
		e.FieldStart("source")
		e.Str(scan.Source)
	}
	e.FieldStart("score")
	if scan.Score == nil {
		e.Null()
	} else {
		e.Float64(*scan.Score)
	}
	e.FieldStart("flags")
	EncodeFlags(e, scan.Flags)
	e.FieldStart("status")
	e.Str(string(scan.Status))
	e.FieldStart("created_at")
	EncodeTime(e, scan.CreatedAt)
	e.FieldStart("resolved_at")
	EncodeTime(e, scan.ResolvedAt)
	e.ObjEnd()
}
