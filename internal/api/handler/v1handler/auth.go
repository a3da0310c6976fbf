package v1handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"scanguard/pkg/controller"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "X-API-Key"

type contextKey string

// AccountKey is the context key of the authenticated *domain.Account.
const AccountKey contextKey = "account"

// AccountFromContext returns the account authenticated by RequireAPIKey.
func AccountFromContext(ctx context.Context) *domain.Account {
	a, _ := ctx.Value(AccountKey).(*domain.Account)

	return a
}

// RequireAPIKey authenticates the X-API-Key header and stores the account in
// the request context.
func (h *Handler) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		a, err := h.deps.Registry.Authenticate(ctx, strings.TrimSpace(r.Header.Get(APIKeyHeader)))
		if err != nil {
			// failed attempts are charged to the client IP so guessing keys is throttled
			if errors.Is(err, serrors.ErrUnauthorized) {
				if delay, ok := h.ipLimiter.Allow(clientIPRateKey(r)); !ok {
					controller.WriteRateLimited(ctx, w, delay)

					return
				}
			}
			controller.WriteError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, AccountKey, a)
		ctx = controller.AddAccessFields(ctx, zap.Stringer("account_id", a.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
