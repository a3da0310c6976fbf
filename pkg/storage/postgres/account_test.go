package postgres_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"scanguard/pkg/domain"
	"scanguard/pkg/storage"
)

func TestPgSQL_StoreAccount_AndLookups(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := newAccount(t, pg, domain.TierPro)
	require.NotEqual(t, domain.AccountID{}, a.ID)
	require.Equal(t, 500, a.ScansLimit)
	require.Zero(t, a.ScansUsed)
	require.False(t, a.PeriodStart.IsZero())

	byKey, err := pg.AccountByAPIKey(ctx, a.APIKey)
	require.NoError(t, err)
	require.Equal(t, a.ID, byKey.ID)

	byID, err := pg.AccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, a.APIKey, byID.APIKey)

	missing, err := pg.AccountByAPIKey(ctx, "sg_missing")
	require.NoError(t, err)
	require.Nil(t, missing)

	_, err = pg.StoreAccount(ctx, domain.Account{
		APIKey: a.APIKey, Email: "x@example.com", Tier: domain.TierFree, ScansLimit: 10, Active: true,
	})
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_IncrementUsage_ConcurrentNeverExceedsLimit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := newAccount(t, pg, domain.TierFree)
	limit := a.ScansLimit

	var (
		g        errgroup.Group
		admitted atomic.Int32
		rejected atomic.Int32
	)
	for range limit + 1 {
		g.Go(func() error {
			res, err := pg.IncrementUsage(ctx, a.ID)
			if err != nil {
				return err
			}
			if res == nil {
				rejected.Add(1)

				return nil
			}
			admitted.Add(1)

			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.EqualValues(t, limit, admitted.Load())
	require.EqualValues(t, 1, rejected.Load())

	got, err := pg.AccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, limit, got.ScansUsed)
	require.EqualValues(t, limit, got.TotalScans)
}

func TestPgSQL_IncrementUsage_Unlimited(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := newAccount(t, pg, domain.TierEnterprise)
	for range 25 {
		res, err := pg.IncrementUsage(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, res)
	}
}

func TestPgSQL_DecrementUsage_FloorsAtZero(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := newAccount(t, pg, domain.TierFree)
	_, err := pg.IncrementUsage(ctx, a.ID)
	require.NoError(t, err)

	require.NoError(t, pg.DecrementUsage(ctx, a.ID))
	require.NoError(t, pg.DecrementUsage(ctx, a.ID))

	got, err := pg.AccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Zero(t, got.ScansUsed)
	require.Zero(t, got.TotalScans)
}

func TestPgSQL_SetWebhook(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := newAccount(t, pg, domain.TierPro)

	got, err := pg.SetWebhook(ctx, a.ID, "https://hooks.example.com/in", "secret")
	require.NoError(t, err)
	require.Equal(t, "https://hooks.example.com/in", got.WebhookURL)
	require.Equal(t, "secret", got.WebhookSecret)

	got, err = pg.SetWebhook(ctx, a.ID, "", "")
	require.NoError(t, err)
	require.False(t, got.HasWebhook())
	require.Empty(t, got.WebhookSecret)
}

func TestPgSQL_ResetUsage(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	a := newAccount(t, pg, domain.TierFree)
	_, err := pg.IncrementUsage(ctx, a.ID)
	require.NoError(t, err)

	next := a.PeriodStart.AddDate(0, 1, 0)
	n, err := pg.ResetUsage(ctx, next)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	got, err := pg.AccountByID(ctx, a.ID)
	require.NoError(t, err)
	require.Zero(t, got.ScansUsed)
	require.EqualValues(t, 1, got.TotalScans)
	require.WithinDuration(t, next, got.PeriodStart, time.Second)

	// running again for the same period is a no-op
	n, err = pg.ResetUsage(ctx, next)
	require.NoError(t, err)
	require.Zero(t, n)
}
