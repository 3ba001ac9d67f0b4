// Package cache provides a Redis-backed cache of analysis snapshots. A cache
// hit skips the upstream fetch entirely, which matters because every miss
// costs five upstream calls.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"creator-fee-scan/internal/domain"
)

// DefaultTTL bounds snapshot staleness between recomputes.
const DefaultTTL = 60 * time.Second

// AnalysisCache caches serialized snapshots keyed by mint.
type AnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisCache creates a cache on an existing Redis client. A
// non-positive ttl falls back to DefaultTTL.
func NewAnalysisCache(client *redis.Client, ttl time.Duration) *AnalysisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AnalysisCache{client: client, ttl: ttl}
}

// cacheKey namespaces snapshot keys.
func cacheKey(mint string) string {
	return "analysis:" + mint
}

// Get retrieves the cached snapshot for a mint. found is false on a miss;
// corrupt cached payloads are treated as misses, not errors.
func (c *AnalysisCache) Get(ctx context.Context, mint string) (*domain.TokenAnalysis, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(mint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var a domain.TokenAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, false, nil
	}
	return &a, true, nil
}

// Set stores a snapshot under its mint with the configured TTL.
func (c *AnalysisCache) Set(ctx context.Context, a *domain.TokenAnalysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(a.Mint), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
