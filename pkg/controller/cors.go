package controller

import (
	"net/http"
	"strings"
)

var (
	corsAllowHeaders = strings.Join([]string{ //nolint: gochecknoglobals
		"Accept", "Content-Type", "Content-Length", "Origin", "Cache-Control",
		"X-API-Key", "X-Admin-Key", "X-Request-Id",
	}, ", ")
	corsAllowMethods = strings.Join([]string{ //nolint: gochecknoglobals
		http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
	}, ", ")
	// browsers hide response headers that are not listed here
	corsExposeHeaders = strings.Join([]string{ //nolint: gochecknoglobals
		"X-Request-Id", "Retry-After",
	}, ", ")
)

// WithCORS returns a middleware that allows cross-origin calls authenticated by
// API key headers and answers OPTIONS preflight requests with 204 No Content.
// Credentials (cookies) are never used, so any origin is accepted.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Expose-Headers", corsExposeHeaders)

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
