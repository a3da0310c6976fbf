package webhook

import (
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"scanguard/pkg/domain"
)

func envelope(eventType domain.EventType, at time.Time, data func(e *jx.Encoder)) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("event")
	e.Str(string(eventType))
	e.FieldStart("timestamp")
	e.Str(at.UTC().Format(time.RFC3339))
	e.FieldStart("data")
	e.ObjStart()
	data(e)
	e.ObjEnd()
	e.ObjEnd()

	return append([]byte(nil), e.Bytes()...)
}

func encodeScore(e *jx.Encoder, scan *domain.Scan) {
	e.FieldStart("score")
	if scan.Score == nil {
		e.Null()
	} else {
		e.Float64(*scan.Score)
	}
}

func encodeFlags(e *jx.Encoder, flags []string) {
	e.FieldStart("flags")
	e.ArrStart()
	for _, f := range flags {
		e.Str(f)
	}
	e.ArrEnd()
}

func newEvent(eventType domain.EventType, scan *domain.Scan, at time.Time, payload []byte) domain.WebhookEvent {
	return domain.WebhookEvent{
		ID:            domain.WebhookEventID(uuid.New()),
		Type:          eventType,
		ScanID:        scan.ID,
		AccountID:     scan.AccountID,
		Payload:       payload,
		Status:        domain.WebhookEventPending,
		NextAttemptAt: at,
		CreatedAt:     at,
	}
}

// NewScanCompleted builds the scan.completed event of a scored scan.
func NewScanCompleted(scan *domain.Scan, at time.Time) domain.WebhookEvent {
	payload := envelope(domain.EventScanCompleted, at, func(e *jx.Encoder) {
		e.FieldStart("scan_id")
		e.Str(scan.ID.String())
		e.FieldStart("url")
		e.Str(scan.URL)
		encodeScore(e, scan)
		encodeFlags(e, scan.Flags)
		e.FieldStart("is_flagged")
		e.Bool(scan.Flagged())
	})

	return newEvent(domain.EventScanCompleted, scan, at, payload)
}

// NewScanFlagged builds the scan.flagged event of a scan that scored above
// the review threshold.
func NewScanFlagged(scan *domain.Scan, reviewPending bool, at time.Time) domain.WebhookEvent {
	payload := envelope(domain.EventScanFlagged, at, func(e *jx.Encoder) {
		e.FieldStart("scan_id")
		e.Str(scan.ID.String())
		e.FieldStart("url")
		e.Str(scan.URL)
		encodeScore(e, scan)
		encodeFlags(e, scan.Flags)
		e.FieldStart("severity")
		e.Str(scan.Severity())
		e.FieldStart("manual_review_pending")
		e.Bool(reviewPending)
	})

	return newEvent(domain.EventScanFlagged, scan, at, payload)
}

// NewReviewCompleted builds the review.completed event of a resolved scan.
func NewReviewCompleted(scan *domain.Scan, decision *domain.ReviewDecision, at time.Time) domain.WebhookEvent {
	payload := envelope(domain.EventReviewCompleted, at, func(e *jx.Encoder) {
		e.FieldStart("scan_id")
		e.Str(scan.ID.String())
		e.FieldStart("original_score")
		if scan.Score == nil {
			e.Null()
		} else {
			e.Float64(*scan.Score)
		}
		e.FieldStart("reviewed_verdict")
		e.Str(string(decision.Verdict))
		e.FieldStart("reviewer_notes")
		e.Str(decision.Notes)
	})

	return newEvent(domain.EventReviewCompleted, scan, at, payload)
}

// ScanEvents returns the events a scan emits on reaching its routed status.
func ScanEvents(scan *domain.Scan, at time.Time) []domain.WebhookEvent {
	switch scan.Status {
	case domain.ScanStatusCompleted:
		events := []domain.WebhookEvent{NewScanCompleted(scan, at)}
		if scan.Flagged() {
			events = append(events, NewScanFlagged(scan, false, at))
		}

		return events
	case domain.ScanStatusPendingReview:
		return []domain.WebhookEvent{NewScanFlagged(scan, true, at)}
	default:
		return nil
	}
}
