package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"scanguard/internal/api/handler"
	"scanguard/internal/orchestrator"
	"scanguard/pkg/controller"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

const maxSourceLength = 64

// CreateScan scores a URL for the authenticated account.
func (h *Handler) CreateScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		req    orchestrator.Request
		hasURL bool
	)
	if err := controller.DecodeJSON(w, r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "url":
			req.URL, err = d.Str()
			hasURL = true
		case "source":
			req.Source, err = decodeOptString(d)
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	}); err != nil {
		controller.WriteError(ctx, w, err)

		return
	}
	if !hasURL {
		controller.WriteError(ctx, w, serrors.With(serrors.ErrBadRequest, "url is required"))

		return
	}
	if len(req.Source) > maxSourceLength {
		controller.WriteError(ctx, w, serrors.With(serrors.ErrBadRequest, "source must be at most %d characters", maxSourceLength))

		return
	}

	res, err := h.deps.Orchestrator.Submit(ctx, AccountFromContext(ctx).APIKey, req)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("score")
		e.Float64(*res.Scan.Score)
		e.FieldStart("flags")
		handler.EncodeFlags(e, res.Scan.Flags)
		e.FieldStart("details")
		e.ObjStart()
		e.FieldStart("scan_id")
		e.Str(res.Scan.ID.String())
		e.FieldStart("status")
		e.Str(string(res.Scan.Status))
		e.FieldStart("manual_review_pending")
		e.Bool(res.ReviewPending())
		e.FieldStart("scans_remaining")
		handler.EncodeCount(e, res.Admission.ScansRemaining, res.Admission.Unlimited())
		e.FieldStart("source")
		if res.Scan.Source == "" {
			e.Null()
		} else {
			e.Str(res.Scan.Source)
		}
		e.ObjEnd()
		e.ObjEnd()
	})
}

// GetScan returns a scan of the authenticated account.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "scanID"))
	if err != nil {
		controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid scan id"))

		return
	}

	scan, err := h.deps.Orchestrator.Scan(ctx, AccountFromContext(ctx).APIKey, domain.ScanID(id))
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		handler.EncodeScan(e, scan)
	})
}
