package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ondohomes/marketplace/internal/core/ports"
)

const nearbyTTL = time.Hour

// NearbyCache memoizes nearby-search assist answers in Redis. Grounded
// location results for the same query barely change within an hour, and the
// collaborator call is the slowest path in the whole service.
// Key format: nearby:<query>:<lat>:<lng>
type NearbyCache struct {
	client *redis.Client
}

// NewNearbyCache creates a NearbyCache wrapping the given Redis client.
func NewNearbyCache(client *redis.Client) *NearbyCache {
	return &NearbyCache{client: client}
}

// Lookup returns the cached result for this query, or nil on a miss. Cache
// errors read as misses; the caller falls through to the collaborator.
func (c *NearbyCache) Lookup(ctx context.Context, query string, lat, lng float64) *ports.NearbyResult {
	raw, err := c.client.Get(ctx, c.key(query, lat, lng)).Bytes()
	if err != nil {
		return nil
	}
	var result ports.NearbyResult
	if json.Unmarshal(raw, &result) != nil {
		return nil
	}
	return &result
}

// Store records a result for this query (expires after nearbyTTL).
func (c *NearbyCache) Store(ctx context.Context, query string, lat, lng float64, result *ports.NearbyResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(query, lat, lng), raw, nearbyTTL).Err()
}

func (c *NearbyCache) key(query string, lat, lng float64) string {
	return fmt.Sprintf("nearby:%s:%.4f:%.4f", strings.ToLower(strings.TrimSpace(query)), lat, lng)
}
