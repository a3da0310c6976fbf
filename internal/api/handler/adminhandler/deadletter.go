package adminhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"scanguard/internal/api/handler"
	"scanguard/pkg/controller"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

func encodeEvent(e *jx.Encoder, ev *domain.WebhookEvent) {
	e.ObjStart()
	e.FieldStart("event_id")
	e.Str(ev.ID.String())
	e.FieldStart("event")
	e.Str(string(ev.Type))
	e.FieldStart("scan_id")
	e.Str(ev.ScanID.String())
	e.FieldStart("account_id")
	e.Str(ev.AccountID.String())
	e.FieldStart("status")
	e.Str(string(ev.Status))
	e.FieldStart("attempt_count")
	e.Int(ev.AttemptCount)
	e.FieldStart("last_error")
	if ev.LastError == "" {
		e.Null()
	} else {
		e.Str(ev.LastError)
	}
	e.FieldStart("created_at")
	handler.EncodeTime(e, ev.CreatedAt)
	e.ObjEnd()
}

// DeadLetters lists events whose deliveries were exhausted, newest first.
func (h *Handler) DeadLetters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := parseLimit(r)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	events, err := h.deps.Dispatcher.DeadLetters(ctx, uint(limit))
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("dead_letters")
		e.ArrStart()
		for i := range events {
			encodeEvent(e, &events[i])
		}
		e.ArrEnd()
		e.ObjEnd()
	})
}

// Redeliver schedules a dead-lettered event for another round of attempts.
func (h *Handler) Redeliver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		controller.WriteError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid event id"))

		return
	}

	event, err := h.deps.Dispatcher.Redeliver(ctx, domain.WebhookEventID(id))
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusAccepted, func(e *jx.Encoder) {
		encodeEvent(e, event)
	})
}
