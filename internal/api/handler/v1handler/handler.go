// Package v1handler implements the /v1 client API: scan submission, account
// self-service and webhook registration.
package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"

	"scanguard/internal/account"
	"scanguard/internal/config"
	"scanguard/internal/orchestrator"
	"scanguard/pkg/controller"
)

// Deps are the services the v1 handlers call into.
type Deps struct {
	Registry     account.Registry
	Orchestrator orchestrator.Orchestrator
	// SeedURLs are the curated URLs served by GET /seed.
	SeedURLs []string
}

// Options configure the v1 handlers.
type Options struct {
	// RateLimitPerMinute is the number of requests one account may make per
	// minute. Signups and calls without a valid API key share the same budget
	// per client IP. Zero disables limiting.
	RateLimitPerMinute int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RateLimitPerMinute: cfg.HTTP.RateLimitPerMinute,
	}
}

type Handler struct {
	deps Deps
	// accountLimiter runs after authentication, keyed by account ID.
	accountLimiter *controller.RateLimiter
	// ipLimiter covers everything that is not yet tied to an account.
	ipLimiter *controller.RateLimiter
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{
		deps:           deps,
		accountLimiter: controller.NewRateLimiter(opts.RateLimitPerMinute, accountRateKey),
		ipLimiter:      controller.NewRateLimiter(opts.RateLimitPerMinute, clientIPRateKey),
	}
}

func accountRateKey(r *http.Request) string {
	if a := AccountFromContext(r.Context()); a != nil {
		return a.ID.String()
	}

	return ""
}

func clientIPRateKey(r *http.Request) string {
	return controller.GetClientIP(r)
}

// Routes registers the v1 endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.With(h.ipLimiter.Handler).Post("/accounts", h.CreateAccount)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAPIKey, h.accountLimiter.Handler)

		r.Post("/scan", h.CreateScan)
		r.Get("/scans/{scanID}", h.GetScan)
		r.Get("/account/stats", h.Stats)
		r.Post("/account/webhook", h.RegisterWebhook)
		r.Delete("/account/webhook", h.DeregisterWebhook)
		r.Get("/seed", h.Seed)
	})
}

func decodeOptString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null() //nolint: wrapcheck
	}

	return d.Str() //nolint: wrapcheck
}
