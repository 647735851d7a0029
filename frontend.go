package cache

import (
	"context"

	"github.com/krisalay/boundedcache/engine"
	"github.com/krisalay/boundedcache/eviction"
	"github.com/krisalay/boundedcache/shard"
	"github.com/krisalay/boundedcache/types"
)

/*
frontend holds what Cache and Sharded have in common: the nil-sentinel
checks, the engine hooks and read-through loading. It never locks anything
itself; every call lands in exactly one shard critical section.
*/
type frontend[K comparable, V any] struct {

	// engine contains the "rules" around storage: notifier, metrics, loader, logger.
	engine *engine.CacheEngine[K, V]

	// policy is the eviction strategy every shard was built with.
	policy eviction.PolicyType

	// loads prevents multiple goroutines from loading the same key simultaneously.
	loads loadGroup[K]
}

func (f *frontend[K, V]) init(policy eviction.PolicyType, eng *engine.CacheEngine[K, V]) {
	if eng == nil {
		eng = engine.NewCacheEngine[K, V](nil, nil, nil, nil)
	}
	f.engine = eng
	f.policy = policy
}

// newShards builds one shard per entry in capacities, all with the same policy.
func newShards[K comparable, V any](policy eviction.PolicyType, capacities ...int) ([]*shard.Shard[K, V], error) {
	shards := make([]*shard.Shard[K, V], len(capacities))
	for i, c := range capacities {
		p, err := eviction.NewEvictionPolicy[K](policy)
		if err != nil {
			return nil, err
		}
		shards[i] = shard.NewShard[K, V](c, p)
	}
	return shards, nil
}

func (f *frontend[K, V]) put(sh *shard.Shard[K, V], key K, value V) {
	if types.IsNil(key) || types.IsNil(value) {
		return
	}

	evicted, ok := sh.Put(key, value)

	// the shard lock is released here, so the notifier may re-enter the cache
	if ok {
		f.engine.OnEvict(evicted)
	}
}

func (f *frontend[K, V]) get(sh *shard.Shard[K, V], key K) (V, bool) {
	if types.IsNil(key) {
		var zero V
		return zero, false
	}

	v, ok := sh.Get(key)
	if ok {
		f.engine.OnHit(key)
	} else {
		f.engine.OnMiss(key)
	}
	return v, ok
}

/*
getOrLoad serves key from memory, or loads it through the engine.

singleflight ensures that if 100 goroutines miss the same key,
only ONE of them calls the loader. The others wait for its result.
*/
func (f *frontend[K, V]) getOrLoad(ctx context.Context, sh *shard.Shard[K, V], key K) (V, error) {
	var zero V
	if types.IsNil(key) {
		return zero, ErrNilKey
	}
	if v, ok := f.get(sh, key); ok {
		return v, nil
	}

	res, err := f.loads.Do(key, func() (any, error) {
		// someone may have stored it while we were waiting on the group
		if v, ok := sh.Get(key); ok {
			return v, nil
		}

		v, err := f.engine.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		f.put(sh, key, v)
		return v, nil
	})
	if err != nil {
		return zero, err
	}

	// a loader may legitimately return a nil interface value
	v, _ := res.(V)
	return v, nil
}
