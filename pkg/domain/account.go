package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies an account within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type AccountID uuid.UUID

// String returns the canonical textual form of the account ID.
func (id AccountID) String() string { return uuid.UUID(id).String() }

// Tier is the service level of an account. It decides the monthly scan quota
// and whether high-scoring scans are routed to manual review.
type Tier string

const (
	// TierFree gets a small monthly quota and no manual review.
	TierFree Tier = "free"
	// TierPro gets a larger monthly quota and manual review of flagged scans.
	TierPro Tier = "pro"
	// TierEnterprise gets an unlimited quota and manual review of flagged scans.
	TierEnterprise Tier = "enterprise"
)

// UnlimitedScans is the ScansLimit value that disables quota enforcement.
const UnlimitedScans = -1

// ParseTier converts a raw string into a Tier.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierFree, TierPro, TierEnterprise:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}

// ScansLimit returns the monthly scan limit for the tier, or UnlimitedScans.
func (t Tier) ScansLimit() int {
	switch t {
	case TierPro:
		return 500
	case TierEnterprise:
		return UnlimitedScans
	default:
		return 10
	}
}

// ReviewEligible reports whether flagged scans of this tier go to manual review.
func (t Tier) ReviewEligible() bool {
	return t == TierPro || t == TierEnterprise
}

// Account is a tenant of the scanning API.
type Account struct {
	// ID is the internal identifier referenced by scans and events.
	ID AccountID `json:"id"`
	// APIKey is the unique, immutable credential presented by clients.
	APIKey string `json:"-"`
	// Email is the contact address provided at signup.
	Email string `json:"email"`
	// Tier is the service level of the account.
	Tier Tier `json:"tier"`

	// ScansUsed counts admitted scans in the current billing period.
	ScansUsed int `json:"scansUsed"`
	// ScansLimit caps ScansUsed; UnlimitedScans means no cap.
	ScansLimit int `json:"scansLimit"`
	// TotalScans counts admitted scans over the account's lifetime.
	TotalScans int64 `json:"totalScans"`

	// WebhookURL is the HTTPS endpoint lifecycle events are delivered to. Empty when not registered.
	WebhookURL string `json:"webhookUrl,omitempty"`
	// WebhookSecret signs webhook payloads. It is issued when a webhook is registered.
	WebhookSecret string `json:"-"`

	Active bool `json:"active"`

	// PeriodStart is when the current usage period began.
	PeriodStart time.Time `json:"periodStart"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Unlimited reports whether the account has no scan cap.
func (a *Account) Unlimited() bool {
	return a.ScansLimit < 0
}

// ScansRemaining returns how many scans are left in the current period.
// The result is meaningless for unlimited accounts.
func (a *Account) ScansRemaining() int {
	if a.Unlimited() {
		return UnlimitedScans
	}

	return max(a.ScansLimit-a.ScansUsed, 0)
}

// HasWebhook reports whether the account has registered a delivery endpoint.
func (a *Account) HasWebhook() bool {
	return a.WebhookURL != ""
}
