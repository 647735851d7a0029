package shard

/*
This file defines how data is actually stored inside a shard.

The store is deliberately dumb: a key → value map with no capacity,
no ordering and no locking. Capacity is enforced by the Shard, ordering
lives in the eviction policy and the Shard's mutex guards both.
*/

// Store is the interface used by a shard to store and retrieve cache values.
type Store[K comparable, V any] interface {

	// Get retrieves a value by key.
	Get(K) (V, bool)

	// Put inserts or replaces a value.
	Put(K, V)

	// Delete removes a key.
	Delete(K)

	// Len returns how many entries are stored.
	Len() int
}

// mapStore is the plain map implementation of Store.
type mapStore[K comparable, V any] struct {
	data map[K]V
}

// NewMapStore returns an empty map-backed store sized for capacity entries.
func NewMapStore[K comparable, V any](capacity int) Store[K, V] {
	return &mapStore[K, V]{data: make(map[K]V, capacity)}
}

func (s *mapStore[K, V]) Get(key K) (V, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *mapStore[K, V]) Put(key K, value V) {
	s.data[key] = value
}

func (s *mapStore[K, V]) Delete(key K) {
	delete(s.data, key)
}

func (s *mapStore[K, V]) Len() int {
	return len(s.data)
}
