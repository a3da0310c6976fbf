package adminhandler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"scanguard/internal/config"
	"scanguard/pkg/controller"
	"scanguard/pkg/serrors"
)

// AdminKeyHeader carries the reviewer's RS256 signed token.
const AdminKeyHeader = "X-Admin-Key"

type contextKey string

// ReviewerKey is the context key of the authenticated reviewer identity.
const ReviewerKey contextKey = "reviewer"

// ReviewerFromContext returns the reviewer authenticated by SecHandler.
func ReviewerFromContext(ctx context.Context) string {
	r, _ := ctx.Value(ReviewerKey).(string)

	return r
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key reviewer tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.Auth.ReviewerPublicKey,
	}
}

// SecHandler authenticates reviewers on the admin API.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse reviewer public key: %w", err)
	}

	return &SecHandler{
		publicKey: publicKey,
	}, nil
}

// Authenticate verifies token and returns the reviewer identity it was issued to.
func (s *SecHandler) Authenticate(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", serrors.Wrap(serrors.ErrForbidden, err, "invalid admin key")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", serrors.With(serrors.ErrForbidden, "invalid admin key")
	}

	return claims.Subject, nil
}

// Handler rejects requests without a valid reviewer token and stores the
// reviewer identity in the request context.
func (s *SecHandler) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get(AdminKeyHeader), "Bearer "))
		reviewer, err := s.Authenticate(token)
		if err != nil {
			controller.WriteError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, ReviewerKey, reviewer)
		ctx = controller.AddAccessFields(ctx, zap.String("reviewer", reviewer))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
