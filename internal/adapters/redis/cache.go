// Package redisad implements domain.Cache on Redis. Values are stored as JSON.
package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"realty_listings/internal/adapters/observability"
)

const cacheName = "redis"

type Cache struct{ c redis.UniversalClient }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Cache) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Cache) Close() error { return r.c.Close() }

// Get decodes the value at key into dst. A missing key is (false, nil).
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := r.c.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		observability.ObserveCache(cacheName, "miss")
		return false, nil
	case err != nil:
		observability.ObserveCache(cacheName, "error")
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		observability.ObserveCache(cacheName, "error")
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	observability.ObserveCache(cacheName, "hit")
	return true, nil
}

// Set stores v as JSON. A zero ttl keeps the key until it is deleted.
func (r *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s for cache: %w", key, err)
	}
	if err := r.c.Set(ctx, key, b, ttl).Err(); err != nil {
		observability.ObserveCache(cacheName, "error")
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	observability.ObserveCache(cacheName, "set")
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	if err := r.c.Del(ctx, key).Err(); err != nil {
		observability.ObserveCache(cacheName, "error")
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	observability.ObserveCache(cacheName, "del")
	return nil
}

// Incr bumps an integer counter; the stored value stays JSON-decodable by Get.
func (r *Cache) Incr(ctx context.Context, key string) (int64, error) {
	n, err := r.c.Incr(ctx, key).Result()
	if err != nil {
		observability.ObserveCache(cacheName, "error")
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	observability.ObserveCache(cacheName, "incr")
	return n, nil
}
