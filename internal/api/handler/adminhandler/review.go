package adminhandler

import (
	"net/http"

	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"scanguard/internal/api/handler"
	"scanguard/internal/review"
	"scanguard/pkg/controller"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

// PendingReviews lists scans awaiting a verdict, oldest first.
func (h *Handler) PendingReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	scans := make([]domain.Scan, 0, min(limit, defaultLimit))
	for scan, err := range h.deps.Queue.ListPending(ctx) {
		if err != nil {
			controller.WriteError(ctx, w, err)

			return
		}
		scans = append(scans, scan)
		if len(scans) == limit {
			break
		}
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("pending_reviews")
		e.ArrStart()
		for i := range scans {
			handler.EncodeScan(e, &scans[i])
		}
		e.ArrEnd()
		e.FieldStart("count")
		e.Int(len(scans))
		e.ObjEnd()
	})
}

// ReviewDecision resolves a pending scan with the caller's verdict.
func (h *Handler) ReviewDecision(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		rawID      string
		rawVerdict string
		notes      string
	)
	if err := controller.DecodeJSON(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "scan_id":
			rawID, err = d.Str()
		case "verdict":
			rawVerdict, err = d.Str()
		case "notes":
			if d.Next() == jx.Null {
				return d.Null() //nolint: wrapcheck
			}
			notes, err = d.Str()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan_id"))

		return
	}

	scan, decision, err := h.deps.Queue.SubmitDecision(ctx, review.Decision{
		ScanID:   domain.ScanID(id),
		Verdict:  domain.Verdict(rawVerdict),
		Notes:    notes,
		Reviewer: ReviewerFromContext(ctx),
	})
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("scan_id")
		e.Str(scan.ID.String())
		e.FieldStart("status")
		e.Str(string(scan.Status))
		e.FieldStart("verdict")
		e.Str(string(decision.Verdict))
		e.FieldStart("reviewer")
		e.Str(decision.Reviewer)
		e.FieldStart("decided_at")
		handler.EncodeTime(e, decision.DecidedAt)
		e.ObjEnd()
	})
}
