// internal/adapters/out/redis/latest_cache.go
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	productdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/product"
)

const (
	latestKey = "catalog:latest"
	latestTTL = 5 * time.Minute
)

// NewClient connects and pings; callers treat an error as "cache disabled".
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, errors.New("redis: addr is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// LatestCache is a read-through cache for the latest-updates catalog view.
// The contract is explicit: product add/delete must call Invalidate, so the
// cached view never drifts past one mutation (plus the TTL backstop).
type LatestCache struct {
	Client *redis.Client
}

func NewLatestCache(client *redis.Client) *LatestCache {
	return &LatestCache{Client: client}
}

// Get returns (items, true) on a hit. Any redis or decode error reads as a
// miss; the caller falls through to Firestore.
func (c *LatestCache) Get(ctx context.Context) ([]productdom.Product, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}

	raw, err := c.Client.Get(ctx, latestKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[latest_cache] WARN: get failed: %v", err)
		}
		return nil, false
	}

	var items []productdom.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[latest_cache] WARN: decode failed, dropping key: %v", err)
		_ = c.Client.Del(ctx, latestKey).Err()
		return nil, false
	}
	return items, true
}

func (c *LatestCache) Set(ctx context.Context, items []productdom.Product) {
	if c == nil || c.Client == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, latestKey, raw, latestTTL).Err(); err != nil {
		log.Printf("[latest_cache] WARN: set failed: %v", err)
	}
}

func (c *LatestCache) Invalidate(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Del(ctx, latestKey).Err(); err != nil {
		log.Printf("[latest_cache] WARN: invalidate failed: %v", err)
	}
}
