package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

const versionPrefix = "version:"

// Layer implements cache-aside with version-tagged keys. A cached entry lives
// under "<tag>:v<version>:<key>"; invalidating a tag bumps its version so
// every older key becomes unreachable and ages out by TTL.
type Layer struct {
	store Store
	ttl   time.Duration
	log   logger.Logger
}

func NewLayer(store Store, ttl time.Duration, log logger.Logger) *Layer {
	return &Layer{
		store: store,
		ttl:   ttl,
		log:   log,
	}
}

// Invalidate never fails the caller. Errors only widen the staleness window,
// which is bounded by the entry TTL.
func (l *Layer) Invalidate(ctx context.Context, tags ...Tag) {
	const op = "cache.Layer.Invalidate"

	for _, tag := range tags {
		if _, err := l.store.Incr(ctx, versionPrefix+string(tag)); err != nil {
			l.log.WarnContext(ctx, op, logger.String("tag", string(tag)), logger.Err(err))
		}
	}
}

func (l *Layer) key(ctx context.Context, tag Tag, key string) (string, error) {
	version, err := l.store.Version(ctx, versionPrefix+string(tag))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s:v%d:%s", tag, version, key), nil
}

// Fetch reads key under tag, falling back to load on a miss and populating
// the cache with the loaded value. The versioned key is resolved once before
// load, so an Invalidate racing with load leaves the loaded value unreachable.
// Cache failures degrade to a plain load.
func Fetch[T any](ctx context.Context, l *Layer, tag Tag, key string, load func(ctx context.Context) (T, error)) (T, error) {
	const op = "cache.Fetch"

	versioned, err := l.key(ctx, tag, key)
	if err != nil {
		l.log.WarnContext(ctx, op, logger.String("tag", string(tag)), logger.Err(err))
		return load(ctx)
	}

	if value, ok := get[T](ctx, l, versioned); ok {
		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	set(ctx, l, versioned, value)

	return value, nil
}

// Lookup returns the cached value for key under the current version of tag.
func Lookup[T any](ctx context.Context, l *Layer, tag Tag, key string) (T, bool) {
	const op = "cache.Lookup"

	versioned, err := l.key(ctx, tag, key)
	if err != nil {
		l.log.WarnContext(ctx, op, logger.String("tag", string(tag)), logger.Err(err))
		var zero T
		return zero, false
	}

	return get[T](ctx, l, versioned)
}

// Put caches value for key under the current version of tag. Failures are logged.
func Put[T any](ctx context.Context, l *Layer, tag Tag, key string, value T) {
	const op = "cache.Put"

	versioned, err := l.key(ctx, tag, key)
	if err != nil {
		l.log.WarnContext(ctx, op, logger.String("tag", string(tag)), logger.Err(err))
		return
	}

	set(ctx, l, versioned, value)
}

func get[T any](ctx context.Context, l *Layer, versioned string) (T, bool) {
	const op = "cache.get"

	var value T

	raw, ok, err := l.store.Get(ctx, versioned)
	if err != nil {
		l.log.WarnContext(ctx, op, logger.String("key", versioned), logger.Err(err))
		return value, false
	}
	if !ok {
		return value, false
	}

	if err = json.Unmarshal(raw, &value); err != nil {
		l.log.WarnContext(ctx, op, logger.String("key", versioned), logger.Err(err))
		return value, false
	}

	l.log.DebugContext(ctx, op, logger.String("hit", versioned))

	return value, true
}

func set[T any](ctx context.Context, l *Layer, versioned string, value T) {
	const op = "cache.set"

	raw, err := json.Marshal(value)
	if err != nil {
		l.log.WarnContext(ctx, op, logger.String("key", versioned), logger.Err(err))
		return
	}

	if err = l.store.Set(ctx, versioned, raw, l.ttl); err != nil {
		l.log.WarnContext(ctx, op, logger.String("key", versioned), logger.Err(err))
	}
}
