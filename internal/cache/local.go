package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LocalStore keeps values in an expirable LRU. Version counters live in a
// separate map: evicting a counter would reset it and resurrect stale keys.
type LocalStore struct {
	values *expirable.LRU[string, []byte]

	mu       sync.Mutex
	versions map[string]int64
}

func NewLocalStore(size int, ttl time.Duration) *LocalStore {
	return &LocalStore{
		values:   expirable.NewLRU[string, []byte](size, nil, ttl),
		versions: make(map[string]int64),
	}
}

func (s *LocalStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.values.Get(key)
	return value, ok, nil
}

// Set ignores ttl: the LRU applies its own expiry to every entry.
func (s *LocalStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	s.values.Add(key, value)
	return nil
}

func (s *LocalStore) Incr(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.versions[key]++

	return s.versions[key], nil
}

func (s *LocalStore) Version(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.versions[key], nil
}

func (s *LocalStore) Len() int {
	return s.values.Len()
}
