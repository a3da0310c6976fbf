package account

import (
	"context"
	"time"

	"scanguard/pkg/domain"
)

// Admission is the result of a successful quota check.
type Admission struct {
	// Account is the admitted account with its usage counters after the increment.
	Account *domain.Account
	// ScansRemaining is the quota left in the current period. It is
	// domain.UnlimitedScans for unlimited accounts.
	ScansRemaining int
}

// Unlimited reports whether the admitted account has no scan cap.
func (a Admission) Unlimited() bool {
	return a.Account.Unlimited()
}

// Registry manages accounts, their API keys, quota and webhook endpoints.
//
//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Registry interface {
	// Create registers a new account and issues its API key.
	Create(ctx context.Context, email string, tier domain.Tier) (*domain.Account, error)
	// Authenticate resolves the account owning apiKey.
	Authenticate(ctx context.Context, apiKey string) (*domain.Account, error)
	// TryAdmit atomically consumes one scan of the account's quota.
	TryAdmit(ctx context.Context, apiKey string) (*Admission, error)
	// Release gives back a scan consumed by TryAdmit.
	Release(ctx context.Context, apiKey string) error
	// RegisterWebhook sets the account's HTTPS delivery endpoint and issues a new signing secret.
	RegisterWebhook(ctx context.Context, apiKey string, URL string) (*domain.Account, error)
	// DeregisterWebhook clears the endpoint and cancels every pending delivery.
	// It returns the number of cancelled events.
	DeregisterWebhook(ctx context.Context, apiKey string) (int64, error)
	// Stats returns the account with fresh usage counters.
	Stats(ctx context.Context, apiKey string) (*domain.Account, error)
	// ResetUsage starts a new usage period for every account whose period began before now's month.
	ResetUsage(ctx context.Context, now time.Time) (int64, error)
}
