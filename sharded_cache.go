package cache

import (
	"context"
	"fmt"
	"log/slog"

	api "github.com/krisalay/boundedcache/api"
	"github.com/krisalay/boundedcache/config"
	"github.com/krisalay/boundedcache/engine"
	"github.com/krisalay/boundedcache/eviction"
	"github.com/krisalay/boundedcache/shard"
)

var _ api.Cache[string, any] = (*Sharded[string, any])(nil)

/*
Sharded splits the cache into independent shards to cut lock contention.

Each shard is a complete bounded cache with its own store, policy instance
and lock. A key always lands on the same shard, so operations on one key
stay linearizable, but ordering across keys only holds within a shard and
each shard evicts on its own schedule.
*/
type Sharded[K comparable, V any] struct {
	frontend[K, V]

	// shards are the actual storage units. Each shard is an independent mini-cache.
	shards []*shard.Shard[K, V]

	// selector decides which shard a key should go to.
	selector shard.Selector[K, V]

	// capacity is the maximum number of entries in the cache. This is divided across shards.
	capacity int
}

/*
NewSharded creates a sharded cache with the given total capacity.

Capacity is divided evenly, the remainder going to the first shards, so
the shard capacities add up to exactly capacity. Every shard needs room for
at least one entry: more shards than capacity is ErrInvalidShards.
*/
func NewSharded[K comparable, V any](
	capacity int,
	shards int,
	policy eviction.PolicyType,
	eng *engine.CacheEngine[K, V],
) (*Sharded[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if shards <= 0 || shards > capacity {
		return nil, fmt.Errorf("%w: got %d for capacity %d", ErrInvalidShards, shards, capacity)
	}

	perShard := capacity / shards
	remainder := capacity % shards

	capacities := make([]int, shards)
	for i := range capacities {
		capacities[i] = perShard
		if i < remainder {
			capacities[i]++
		}
	}

	s, err := newShards[K, V](policy, capacities...)
	if err != nil {
		return nil, err
	}

	c := &Sharded[K, V]{
		shards:   s,
		selector: shard.HashSelector[K, V]{},
		capacity: capacity,
	}
	c.init(policy, eng)
	c.engine.Logger.Debug("sharded cache created",
		slog.Int("capacity", capacity),
		slog.Int("shards", shards),
		slog.String("policy", policy.String()))
	return c, nil
}

// Put stores value in the key's shard, evicting from that shard if it is full.
func (c *Sharded[K, V]) Put(key K, value V) {
	c.put(c.selector.Select(key, c.shards), key, value)
}

// Get retrieves a value from the key's shard.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	return c.get(c.selector.Select(key, c.shards), key)
}

// GetOrLoad returns the cached value or loads, stores and returns it.
func (c *Sharded[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	return c.getOrLoad(ctx, c.selector.Select(key, c.shards), key)
}

// Remove deletes a key from the cache immediately.
func (c *Sharded[K, V]) Remove(key K) bool {
	return c.selector.Select(key, c.shards).Remove(key)
}

// Len sums the shard sizes. Under concurrent writes it is a snapshot, not a total order.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for _, sh := range c.shards {
		n += sh.Len()
	}
	return n
}

func (c *Sharded[K, V]) Capacity() int { return c.capacity }

// Keys concatenates each shard's keys in eviction order, shard by shard.
func (c *Sharded[K, V]) Keys() []K {
	keys := make([]K, 0, c.capacity)
	for _, sh := range c.shards {
		keys = append(keys, sh.Keys()...)
	}
	return keys
}

// Shards returns the number of shards.
func (c *Sharded[K, V]) Shards() int { return len(c.shards) }

// Policy returns the eviction strategy in use.
func (c *Sharded[K, V]) Policy() eviction.PolicyType { return c.policy }

/*
NewFromConfig builds the cache described by cfg.
One shard gives the single-lock Cache, more give a Sharded cache.
*/
func NewFromConfig[K comparable, V any](cfg config.Config, eng *engine.CacheEngine[K, V]) (api.Cache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Shards <= 1 {
		c, err := New(cfg.Capacity, cfg.Policy, eng)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	c, err := NewSharded(cfg.Capacity, cfg.Shards, cfg.Policy, eng)
	if err != nil {
		return nil, err
	}
	return c, nil
}
