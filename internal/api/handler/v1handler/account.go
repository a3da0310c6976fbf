package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"

	"scanguard/internal/api/handler"
	"scanguard/pkg/controller"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

// CreateAccount signs up a new free tier account and returns its API key.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var email string
	if err := controller.DecodeJSON(w, r, func(d *jx.Decoder, key string) error {
		if key != "email" {
			return d.Skip() //nolint: wrapcheck
		}
		var err error
		email, err = d.Str()

		return err //nolint: wrapcheck
	}); err != nil {
		controller.WriteError(ctx, w, err)

		return
	}
	if email == "" {
		controller.WriteError(ctx, w, serrors.With(serrors.ErrBadRequest, "email is required"))

		return
	}

	a, err := h.deps.Registry.Create(ctx, email, domain.TierFree)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusCreated, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("api_key")
		e.Str(a.APIKey)
		e.FieldStart("email")
		e.Str(a.Email)
		e.FieldStart("tier")
		e.Str(string(a.Tier))
		e.FieldStart("scans_limit")
		handler.EncodeCount(e, a.ScansLimit, a.Unlimited())
		e.ObjEnd()
	})
}

// Stats returns the usage of the authenticated account.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.deps.Registry.Stats(ctx, AccountFromContext(ctx).APIKey)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("email")
		e.Str(a.Email)
		e.FieldStart("tier")
		e.Str(string(a.Tier))
		e.FieldStart("scans_used")
		e.Int(a.ScansUsed)
		e.FieldStart("scans_limit")
		handler.EncodeCount(e, a.ScansLimit, a.Unlimited())
		e.FieldStart("scans_remaining")
		handler.EncodeCount(e, a.ScansRemaining(), a.Unlimited())
		e.FieldStart("total_scans")
		e.Int64(a.TotalScans)
		e.FieldStart("webhook_registered")
		e.Bool(a.HasWebhook())
		e.FieldStart("period_start")
		handler.EncodeTime(e, a.PeriodStart)
		e.FieldStart("created_at")
		handler.EncodeTime(e, a.CreatedAt)
		e.ObjEnd()
	})
}

// RegisterWebhook sets the HTTPS endpoint lifecycle events are delivered to.
func (h *Handler) RegisterWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var URL string
	if err := controller.DecodeJSON(w, r, func(d *jx.Decoder, key string) error {
		if key != "webhook_url" {
			return d.Skip() //nolint: wrapcheck
		}
		var err error
		URL, err = d.Str()

		return err //nolint: wrapcheck
	}); err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	a, err := h.deps.Registry.RegisterWebhook(ctx, AccountFromContext(ctx).APIKey, URL)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("webhook_url")
		e.Str(a.WebhookURL)
		e.FieldStart("signing_secret")
		e.Str(a.WebhookSecret)
		e.ObjEnd()
	})
}

// DeregisterWebhook removes the endpoint and cancels pending deliveries.
func (h *Handler) DeregisterWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.deps.Registry.DeregisterWebhook(ctx, AccountFromContext(ctx).APIKey)
	if err != nil {
		controller.WriteError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("cancelled_events")
		e.Int64(n)
		e.ObjEnd()
	})
}

// Seed returns curated URLs for labelling.
func (h *Handler) Seed(w http.ResponseWriter, _ *http.Request) {
	controller.WriteJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("urls")
		handler.EncodeFlags(e, h.deps.SeedURLs)
		e.ObjEnd()
	})
}
