package main

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"scanguard/internal/config"
	"scanguard/pkg/logger"
)

// signAdminKey issues an RS256 token naming reviewer as its subject. The admin
// API only accepts tokens that expire.
func signAdminKey(privateKeyPEM, reviewer string, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse reviewer private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   reviewer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign admin key: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand, which prints an admin key
// (X-Admin-Key) for a reviewer.
func JWTCommand(cfg *config.Config) *cobra.Command {
	var (
		reviewer string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an admin key for the given reviewer",
		Run: func(cmd *cobra.Command, args []string) {
			signed, err := signAdminKey(cfg.Auth.ReviewerPrivateKey, reviewer, ttl, time.Now())
			if err != nil {
				logger.Fatal(context.Background(), "could not generate admin key",
					zap.String("reviewer", reviewer), zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().StringVar(&reviewer, "subject", "", "Reviewer identity, e.g. an email address")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
