package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps computed dashboard payloads in Redis for a short TTL so
// chart refreshes don't recompute identical aggregates. A nil *ReportCache is
// valid and always misses, which is how the service runs without Redis.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get loads a cached payload into v. Returns false on miss or any error;
// cache problems are logged, never surfaced.
func (c *ReportCache) Get(ctx context.Context, key string, v interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s failed: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("cache: stale payload for %s: %v", key, err)
		return false
	}

	return true
}

// Set stores a payload best-effort.
func (c *ReportCache) Set(ctx context.Context, key string, v interface{}) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("cache: marshal %s failed: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", key, err)
	}
}
