package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"creator-fee-scan/internal/domain"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*AnalysisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAnalysisCache(client, ttl), mr
}

func testAnalysis(mint string) *domain.TokenAnalysis {
	return &domain.TokenAnalysis{
		Mint:            mint,
		LifetimeFeesSOL: 125.5,
		Verdict:         domain.VerdictHealthy,
		Summary:         "Fee revenue is healthily distributed.",
		Claimers: []domain.Claimer{
			{Wallet: "walletA", RoyaltyBps: 10000, IsCreator: true, TotalClaimed: "0"},
		},
		AnalyzedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestAnalysisCache_SetAndGet(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testAnalysis("mintA")))

	got, found, err := c.Get(ctx, "mintA")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "mintA", got.Mint)
	require.Equal(t, 125.5, got.LifetimeFeesSOL)
	require.Equal(t, domain.VerdictHealthy, got.Verdict)
	require.Len(t, got.Claimers, 1)
}

func TestAnalysisCache_MissForUnknownMint(t *testing.T) {
	c, _ := setupTestCache(t, time.Minute)

	_, found, err := c.Get(context.Background(), "unknown")
	require.NoError(t, err)
	require.False(t, found)
}

func TestAnalysisCache_EntriesExpire(t *testing.T) {
	c, mr := setupTestCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testAnalysis("mintA")))

	mr.FastForward(2 * time.Second)

	_, found, err := c.Get(ctx, "mintA")
	require.NoError(t, err)
	require.False(t, found)
}

func TestAnalysisCache_CorruptPayloadIsMiss(t *testing.T) {
	c, mr := setupTestCache(t, time.Minute)

	require.NoError(t, mr.Set("analysis:mintA", "not json"))

	_, found, err := c.Get(context.Background(), "mintA")
	require.NoError(t, err)
	require.False(t, found)
}
