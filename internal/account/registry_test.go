package account_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scanguard/internal/account"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"
	"scanguard/pkg/storage"
	mockstorage "scanguard/pkg/storage/mock"
)

const apiKey = "sg_test-key"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestRegistry(t *testing.T, opts account.Options) (*gomock.Controller, *mockstorage.MockStorage, account.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r, err := account.New(st, opts)
	require.NoError(t, err)

	return ctrl, st, r
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func testAccount(tier domain.Tier) *domain.Account {
	return &domain.Account{
		ID:         domain.AccountID(uuid.New()),
		APIKey:     apiKey,
		Email:      "owner@example.com",
		Tier:       tier,
		ScansLimit: tier.ScansLimit(),
		Active:     true,
	}
}

func TestRegistry_Create(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	st.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a domain.Account) (*domain.Account, error) {
			require.True(t, strings.HasPrefix(a.APIKey, account.APIKeyPrefix))
			require.Greater(t, len(a.APIKey), 40)
			require.Equal(t, "owner@example.com", a.Email)
			require.Equal(t, 500, a.ScansLimit)
			require.True(t, a.Active)
			a.ID = domain.AccountID(uuid.New())

			return &a, nil
		})

	a, err := r.Create(context.Background(), "Owner <owner@example.com>", domain.TierPro)
	require.NoError(t, err)
	require.Equal(t, domain.TierPro, a.Tier)
}

func TestRegistry_Create_NormalizesTier(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	st.EXPECT().StoreAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a domain.Account) (*domain.Account, error) {
			require.Equal(t, domain.TierPro, a.Tier)
			require.Equal(t, 500, a.ScansLimit)
			a.ID = domain.AccountID(uuid.New())

			return &a, nil
		})

	a, err := r.Create(context.Background(), "owner@example.com", domain.Tier(" PRO "))
	require.NoError(t, err)
	require.Equal(t, domain.TierPro, a.Tier)
}

func TestRegistry_Create_Invalid(t *testing.T) {
	_, _, r := newTestRegistry(t, account.Options{})

	_, err := r.Create(context.Background(), "not-an-email", domain.TierFree)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = r.Create(context.Background(), "owner@example.com", domain.Tier("platinum"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		key, err := account.GenerateAPIKey()
		require.NoError(t, err)
		require.NotContains(t, seen, key)
		seen[key] = struct{}{}
	}
}

func TestRegistry_Authenticate(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	_, err := r.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	_, err = r.Authenticate(context.Background(), "dfg_legacy")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().AccountByAPIKey(gomock.Any(), "sg_unknown").Return(nil, nil)
	_, err = r.Authenticate(context.Background(), "sg_unknown")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	inactive := testAccount(domain.TierFree)
	inactive.Active = false
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(inactive, nil)
	_, err = r.Authenticate(context.Background(), apiKey)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestRegistry_Authenticate_Cached(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{CacheTTL: time.Minute, CacheSize: 100})

	a := testAccount(domain.TierFree)
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil).Times(1)

	for range 3 {
		got, err := r.Authenticate(context.Background(), apiKey)
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
	}
}

func TestRegistry_TryAdmit(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierFree)
	a.ScansUsed = 9
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)

	updated := *a
	updated.ScansUsed = 10
	st.EXPECT().IncrementUsage(gomock.Any(), a.ID).Return(&updated, nil)

	adm, err := r.TryAdmit(context.Background(), apiKey)
	require.NoError(t, err)
	require.Zero(t, adm.ScansRemaining)
	require.False(t, adm.Unlimited())
	require.Equal(t, 10, adm.Account.ScansUsed)
}

func TestRegistry_TryAdmit_QuotaExceeded(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierFree)
	a.ScansUsed = 10
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	st.EXPECT().IncrementUsage(gomock.Any(), a.ID).Return(nil, nil)
	st.EXPECT().AccountByID(gomock.Any(), a.ID).Return(a, nil)

	_, err := r.TryAdmit(context.Background(), apiKey)
	require.ErrorIs(t, err, serrors.ErrQuotaExceeded)
	require.ErrorContains(t, err, "10 scans")
}

func TestRegistry_TryAdmit_DeactivatedMeanwhile(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierPro)
	deactivated := *a
	deactivated.Active = false
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	st.EXPECT().IncrementUsage(gomock.Any(), a.ID).Return(nil, nil)
	st.EXPECT().AccountByID(gomock.Any(), a.ID).Return(&deactivated, nil)

	_, err := r.TryAdmit(context.Background(), apiKey)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestRegistry_TryAdmit_Unlimited(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierEnterprise)
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	updated := *a
	updated.ScansUsed = 12345
	st.EXPECT().IncrementUsage(gomock.Any(), a.ID).Return(&updated, nil)

	adm, err := r.TryAdmit(context.Background(), apiKey)
	require.NoError(t, err)
	require.True(t, adm.Unlimited())
	require.Equal(t, domain.UnlimitedScans, adm.ScansRemaining)
}

func TestRegistry_TryAdmit_StorageError(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierFree)
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	st.EXPECT().IncrementUsage(gomock.Any(), a.ID).Return(nil, errors.New("conn reset"))

	_, err := r.TryAdmit(context.Background(), apiKey)
	require.ErrorContains(t, err, "conn reset")
	require.NotErrorIs(t, err, serrors.ErrQuotaExceeded)
}

func TestRegistry_Release(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierFree)
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	st.EXPECT().DecrementUsage(gomock.Any(), a.ID).Return(nil)

	require.NoError(t, r.Release(context.Background(), apiKey))
}

func TestRegistry_RegisterWebhook(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{CacheTTL: time.Minute, CacheSize: 100})

	a := testAccount(domain.TierPro)
	// second lookup proves the cached account was invalidated
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil).Times(2)
	st.EXPECT().SetWebhook(gomock.Any(), a.ID, "https://hooks.example.com/sg", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.AccountID, URL, secret string) (*domain.Account, error) {
			require.True(t, strings.HasPrefix(secret, account.WebhookSecretPrefix))
			updated := *a
			updated.WebhookURL = URL
			updated.WebhookSecret = secret

			return &updated, nil
		})

	updated, err := r.RegisterWebhook(context.Background(), apiKey, "https://hooks.example.com/sg")
	require.NoError(t, err)
	require.True(t, updated.HasWebhook())
	require.NotEmpty(t, updated.WebhookSecret)

	_, err = r.Authenticate(context.Background(), apiKey)
	require.NoError(t, err)
}

func TestRegistry_RegisterWebhook_RejectsNonHTTPS(t *testing.T) {
	_, _, r := newTestRegistry(t, account.Options{})

	for _, u := range []string{"http://hooks.example.com", "hooks.example.com", "", "https://"} {
		_, err := r.RegisterWebhook(context.Background(), apiKey, u)
		require.ErrorIs(t, err, serrors.ErrBadRequest, u)
	}
}

func TestRegistry_DeregisterWebhook(t *testing.T) {
	ctrl, st, r := newTestRegistry(t, account.Options{})

	a := testAccount(domain.TierPro)
	a.WebhookURL = "https://hooks.example.com/sg"
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		cleared := *a
		cleared.WebhookURL = ""
		gomock.InOrder(
			tx.EXPECT().SetWebhook(gomock.Any(), a.ID, "", "").Return(&cleared, nil),
			tx.EXPECT().CancelPendingWebhookEvents(gomock.Any(), a.ID).Return(int64(3), nil),
		)
	})

	n, err := r.DeregisterWebhook(context.Background(), apiKey)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}

func TestRegistry_Stats_ReadsFreshCounters(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{CacheTTL: time.Minute, CacheSize: 100})

	a := testAccount(domain.TierFree)
	fresh := *a
	fresh.ScansUsed = 4
	st.EXPECT().AccountByAPIKey(gomock.Any(), apiKey).Return(a, nil)
	st.EXPECT().AccountByID(gomock.Any(), a.ID).Return(&fresh, nil)

	got, err := r.Stats(context.Background(), apiKey)
	require.NoError(t, err)
	require.Equal(t, 4, got.ScansUsed)
	require.Equal(t, 6, got.ScansRemaining())
}

func TestRegistry_ResetUsage(t *testing.T) {
	_, st, r := newTestRegistry(t, account.Options{})

	now := time.Date(2026, time.March, 17, 13, 4, 0, 0, time.FixedZone("CET", 3600))
	st.EXPECT().ResetUsage(gomock.Any(), time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)).Return(int64(7), nil)

	n, err := r.ResetUsage(context.Background(), now)
	require.NoError(t, err)
	require.EqualValues(t, 7, n)
}

func TestPeriodStart(t *testing.T) {
	// 00:30 on the 1st in UTC+2 is still the previous month in UTC
	local := time.Date(2026, time.April, 1, 0, 30, 0, 0, time.FixedZone("EET", 2*3600))
	require.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), account.PeriodStart(local))
}
