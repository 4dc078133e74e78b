// Package cache holds the Redis-backed cache for similar-listing results.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"realty-catalog/internal/common/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "catalog:similar:"

// SimilarCache stores ranked similar-listing ids per (reference id, limit)
// with a TTL. Only ids are cached; listings are always resolved against the
// current catalog snapshot so cached entries never leak stale listing data.
type SimilarCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewSimilarCache(client *redis.Client, ttl time.Duration, log logger.Logger) *SimilarCache {
	return &SimilarCache{
		client: client,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "similar-cache"}),
	}
}

func cacheKey(referenceID string, limit int) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, referenceID, limit)
}

// Get returns the cached ranked ids for the reference, if present. Cache
// errors degrade to a miss.
func (c *SimilarCache) Get(ctx context.Context, referenceID string, limit int) ([]string, bool) {
	val, err := c.client.Get(ctx, cacheKey(referenceID, limit)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", map[string]interface{}{"error": err})
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		c.logger.Warn("cache entry corrupt, ignoring", map[string]interface{}{
			"key":   cacheKey(referenceID, limit),
			"error": err,
		})
		return nil, false
	}
	return ids, true
}

// Set stores the ranked ids for the reference. Failures are logged, never
// surfaced; the cache is an optimization.
func (c *SimilarCache) Set(ctx context.Context, referenceID string, limit int, ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(referenceID, limit), data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{"error": err})
	}
}

// Flush removes every similar-listing entry. Called after a catalog reload,
// since cached rankings refer to the previous snapshot.
func (c *SimilarCache) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache flush scan: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache flush delete: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
