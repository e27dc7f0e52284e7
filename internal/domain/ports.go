package domain

import (
	"context"
	"time"
)

type PropertyRepository interface {
	// Write paths
	Insert(ctx context.Context, p Property) error
	Replace(ctx context.Context, p Property) error

	// Read paths
	Get(ctx context.Context, id string) (Property, error)
	Find(ctx context.Context, q Query, limit int) ([]Property, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}
