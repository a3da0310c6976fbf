package storage

import (
	"context"
	"scanguard/pkg/domain"
	"time"
)

// AccountStorage persists accounts and their usage counters.
type AccountStorage interface {
	// StoreAccount inserts a new account and returns the stored row.
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	// AccountByAPIKey returns the account owning apiKey, or nil when not found.
	AccountByAPIKey(ctx context.Context, apiKey string) (*domain.Account, error)
	// AccountByID returns the account with the given ID, or nil when not found.
	AccountByID(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
	// IncrementUsage atomically increments the usage counters of an active
	// account when it still has quota left and returns the updated row. It
	// returns nil when the account is unknown, inactive or out of quota.
	IncrementUsage(ctx context.Context, ID domain.AccountID) (*domain.Account, error)
	// DecrementUsage reverts one IncrementUsage. Counters never go below zero.
	DecrementUsage(ctx context.Context, ID domain.AccountID) error
	// SetWebhook sets or, with empty values, clears the webhook endpoint and
	// signing secret of an account. Returns nil when the account is not found.
	SetWebhook(ctx context.Context, ID domain.AccountID, URL string, secret string) (*domain.Account, error)
	// ResetUsage zeroes scans_used of every account whose period started before
	// periodStart and moves its period to periodStart. It returns the number of reset accounts.
	ResetUsage(ctx context.Context, periodStart time.Time) (int64, error)
}
