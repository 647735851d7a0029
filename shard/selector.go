package shard

import (
	"github.com/cespare/xxhash/v2"

	"github.com/krisalay/boundedcache/types"
)

/*
This file decides HOW a cache key is assigned to a shard.
If every key went to the same shard, that shard's lock would become a bottleneck.
*/

// Selector decides which shard should handle a given key.
// The same key must always map to the same shard.
type Selector[K comparable, V any] interface {
	Select(K, []*Shard[K, V]) *Shard[K, V]
}

// HashSelector spreads keys across shards by the xxhash of their string form.
type HashSelector[K comparable, V any] struct{}

func hash[K comparable](key K) uint64 {
	return xxhash.Sum64String(types.KeyString(key))
}

// Select chooses the shard for a given key.
func (HashSelector[K, V]) Select(key K, shards []*Shard[K, V]) *Shard[K, V] {
	return shards[hash(key)%uint64(len(shards))]
}
