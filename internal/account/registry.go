// Package account implements the account registry: API key issuance and
// authentication, the atomic monthly scan quota and webhook registration.
package account

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"

	"scanguard/internal/config"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
	"scanguard/pkg/urlnorm"
)

const (
	// APIKeyPrefix starts every issued API key.
	APIKeyPrefix = "sg_"
	// WebhookSecretPrefix starts every issued webhook signing secret.
	WebhookSecretPrefix = "whsec_"

	apiKeyBytes        = 32
	webhookSecretBytes = 32
)

// Options configure the registry's in-process account cache.
type Options struct {
	// CacheTTL is how long an authenticated account is served from memory.
	// Zero disables the cache.
	CacheTTL time.Duration
	// CacheSize is the maximum number of cached accounts.
	CacheSize int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		CacheTTL:  cfg.Auth.AccountCacheTTL,
		CacheSize: cfg.Auth.AccountCacheSize,
	}
}

type registry struct {
	options Options
	storage storage.Storage
	cache   *ristretto.Cache[string, domain.Account]
}

// New creates a Registry backed by the provided storage.
func New(storage storage.Storage, options Options) (Registry, error) {
	r := &registry{
		options: options,
		storage: storage,
	}
	if options.CacheTTL <= 0 || options.CacheSize <= 0 {
		return r, nil
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, domain.Account]{
		NumCounters: options.CacheSize * 10, // ~10x expected items
		MaxCost:     options.CacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create account cache: %w", err)
	}
	r.cache = cache

	return r, nil
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateAPIKey returns a new random API key.
func GenerateAPIKey() (string, error) {
	token, err := randomToken(apiKeyBytes)
	if err != nil {
		return "", err
	}

	return APIKeyPrefix + token, nil
}

// GenerateWebhookSecret returns a new random webhook signing secret.
func GenerateWebhookSecret() (string, error) {
	b := make([]byte, webhookSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}

	return WebhookSecretPrefix + hex.EncodeToString(b), nil
}

func (r *registry) Create(ctx context.Context, email string, tier domain.Tier) (*domain.Account, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}
	tier, err = domain.ParseTier(string(tier))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid tier")
	}

	key, err := GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	account, err := r.storage.StoreAccount(ctx, domain.Account{
		APIKey:     key,
		Email:      addr.Address,
		Tier:       tier,
		ScansLimit: tier.ScansLimit(),
		Active:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store account: %w", err)
	}

	logger.Info(ctx, "Account created",
		zap.Stringer("account_id", account.ID),
		zap.String("tier", string(account.Tier)))

	return account, nil
}

func (r *registry) cached(apiKey string) (*domain.Account, bool) {
	if r.cache == nil {
		return nil, false
	}
	a, ok := r.cache.Get(apiKey)
	if !ok {
		return nil, false
	}

	return &a, true
}

func (r *registry) remember(a *domain.Account) {
	if r.cache == nil {
		return
	}
	r.cache.SetWithTTL(a.APIKey, *a, 1, r.options.CacheTTL)
	r.cache.Wait()
}

func (r *registry) forget(apiKey string) {
	if r.cache == nil {
		return
	}
	r.cache.Del(apiKey)
}

func (r *registry) Authenticate(ctx context.Context, apiKey string) (*domain.Account, error) {
	if !strings.HasPrefix(apiKey, APIKeyPrefix) {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid or missing API key")
	}
	if a, ok := r.cached(apiKey); ok {
		return a, nil
	}

	a, err := r.storage.AccountByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if a == nil || !a.Active {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid or missing API key")
	}
	r.remember(a)

	return a, nil
}

func (r *registry) TryAdmit(ctx context.Context, apiKey string) (*Admission, error) {
	a, err := r.Authenticate(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	updated, err := r.storage.IncrementUsage(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("could not increment usage: %w", err)
	}
	if updated != nil {
		return &Admission{Account: updated, ScansRemaining: updated.ScansRemaining()}, nil
	}

	// the conditional update matched nothing; find out why
	fresh, err := r.storage.AccountByID(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if fresh == nil || !fresh.Active {
		r.forget(apiKey)

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid or missing API key")
	}

	return nil, serrors.With(serrors.ErrQuotaExceeded,
		"monthly scan limit reached (%d scans), please upgrade your plan", fresh.ScansLimit)
}

func (r *registry) Release(ctx context.Context, apiKey string) error {
	a, err := r.Authenticate(ctx, apiKey)
	if err != nil {
		return err
	}
	if err := r.storage.DecrementUsage(ctx, a.ID); err != nil {
		return fmt.Errorf("could not release usage: %w", err)
	}

	return nil
}

func (r *registry) RegisterWebhook(ctx context.Context, apiKey string, URL string) (*domain.Account, error) {
	URL, err := urlnorm.RequireHTTPS(URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "webhook_url must be a well-formed https URL")
	}

	a, err := r.Authenticate(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	secret, err := GenerateWebhookSecret()
	if err != nil {
		return nil, err
	}

	updated, err := r.storage.SetWebhook(ctx, a.ID, URL, secret)
	if err != nil {
		return nil, fmt.Errorf("could not set webhook: %w", err)
	}
	r.forget(apiKey)
	if updated == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid or missing API key")
	}

	logger.Info(ctx, "Webhook registered", zap.Stringer("account_id", updated.ID))

	return updated, nil
}

func (r *registry) DeregisterWebhook(ctx context.Context, apiKey string) (int64, error) {
	a, err := r.Authenticate(ctx, apiKey)
	if err != nil {
		return 0, err
	}

	var cancelled int64
	err = r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.SetWebhook(ctx, a.ID, "", "")
		if err != nil {
			return fmt.Errorf("could not clear webhook: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrUnauthorized, "invalid or missing API key")
		}

		cancelled, err = tx.CancelPendingWebhookEvents(ctx, a.ID)
		if err != nil {
			return fmt.Errorf("could not cancel pending events: %w", err)
		}

		return nil
	})
	r.forget(apiKey)
	if err != nil {
		return 0, fmt.Errorf("could not deregister webhook: %w", err)
	}

	logger.Info(ctx, "Webhook deregistered",
		zap.Stringer("account_id", a.ID),
		zap.Int64("cancelled_events", cancelled))

	return cancelled, nil
}

func (r *registry) Stats(ctx context.Context, apiKey string) (*domain.Account, error) {
	a, err := r.Authenticate(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	fresh, err := r.storage.AccountByID(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if fresh == nil {
		r.forget(apiKey)

		return nil, serrors.With(serrors.ErrUnauthorized, "invalid or missing API key")
	}

	return fresh, nil
}

// PeriodStart returns the start of the usage period containing t: the first
// instant of its month in UTC.
func PeriodStart(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (r *registry) ResetUsage(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.storage.ResetUsage(ctx, PeriodStart(now))
	if err != nil {
		return 0, fmt.Errorf("could not reset usage: %w", err)
	}
	if r.cache != nil {
		r.cache.Clear()
	}

	logger.Info(ctx, "Usage period reset", zap.Int64("accounts", n))

	return n, nil
}
