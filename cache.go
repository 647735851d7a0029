package cache

import (
	"context"
	"fmt"
	"log/slog"

	api "github.com/krisalay/boundedcache/api"
	"github.com/krisalay/boundedcache/engine"
	"github.com/krisalay/boundedcache/eviction"
	"github.com/krisalay/boundedcache/shard"
)

var _ api.Cache[string, any] = (*Cache[string, any])(nil)

/*
Cache is the bounded cache facade.

It composes one entry store and one eviction policy behind a single lock,
so every Put and Get is linearizable: they happen in one total order and
no caller ever sees a half-applied eviction.
*/
type Cache[K comparable, V any] struct {
	frontend[K, V]

	// shard is the store + policy pair guarded by one mutex.
	shard *shard.Shard[K, V]
}

/*
New creates a cache holding at most capacity entries, evicting by policy.

A nil engine means no notifier, no metrics, no loader and a discarding logger.
Capacity <= 0 and unknown policies fail here rather than later.
*/
func New[K comparable, V any](
	capacity int,
	policy eviction.PolicyType,
	eng *engine.CacheEngine[K, V],
) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	shards, err := newShards[K, V](policy, capacity)
	if err != nil {
		return nil, err
	}

	c := &Cache[K, V]{shard: shards[0]}
	c.init(policy, eng)
	c.engine.Logger.Debug("cache created",
		slog.Int("capacity", capacity),
		slog.String("policy", policy.String()))
	return c, nil
}

// MustNew is New that panics on a bad capacity or policy.
func MustNew[K comparable, V any](
	capacity int,
	policy eviction.PolicyType,
	eng *engine.CacheEngine[K, V],
) *Cache[K, V] {
	c, err := New(capacity, policy, eng)
	if err != nil {
		panic(err)
	}
	return c
}

// Put stores value under key, evicting one entry first if the cache is full.
// A nil key or nil value is ignored.
func (c *Cache[K, V]) Put(key K, value V) {
	c.put(c.shard, key, value)
}

// Get returns the value for key and whether it was found.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.get(c.shard, key)
}

// GetOrLoad returns the cached value or loads, stores and returns it.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	return c.getOrLoad(ctx, c.shard, key)
}

// Remove invalidates key without notifying the eviction notifier.
func (c *Cache[K, V]) Remove(key K) bool {
	return c.shard.Remove(key)
}

func (c *Cache[K, V]) Len() int { return c.shard.Len() }

func (c *Cache[K, V]) Capacity() int { return c.shard.Capacity() }

// Keys returns the stored keys, next eviction victim first.
func (c *Cache[K, V]) Keys() []K { return c.shard.Keys() }

// Policy returns the eviction strategy in use.
func (c *Cache[K, V]) Policy() eviction.PolicyType { return c.policy }
