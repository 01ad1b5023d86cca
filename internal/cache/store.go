package cache

import (
	"context"
	"time"
)

// Store is the key-value collaborator behind the cache layer.
// Get reports a miss with ok == false and a nil error.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
	Version(ctx context.Context, key string) (int64, error)
}
