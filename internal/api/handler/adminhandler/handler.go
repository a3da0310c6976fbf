// Package adminhandler implements the reviewer facing /admin API: the manual
// review queue and the webhook dead letter queue.
package adminhandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"scanguard/internal/review"
	"scanguard/internal/webhook"
	"scanguard/pkg/serrors"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Deps struct {
	Queue      review.Queue
	Dispatcher webhook.Dispatcher
}

type Handler struct {
	deps Deps
	sec  *SecHandler
}

func New(deps Deps, sec *SecHandler) *Handler {
	return &Handler{
		deps: deps,
		sec:  sec,
	}
}

// Routes registers the admin endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Use(h.sec.Handler)

	r.Get("/pending-reviews", h.PendingReviews)
	r.Post("/review-decision", h.ReviewDecision)
	r.Get("/dead-letters", h.DeadLetters)
	r.Post("/dead-letters/{eventID}/redeliver", h.Redeliver)
}

// parseLimit reads the limit query parameter, bounded to [1, maxLimit].
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultLimit, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
	}

	return min(n, maxLimit), nil
}
