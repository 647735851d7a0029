package shard

import (
	"sync"

	"github.com/krisalay/boundedcache/eviction"
)

/*
This file defines what a "Shard" is. A shard is a small, independent, bounded
cache: one entry store, one eviction policy and one lock that guards both.

Every public method takes the lock exactly once and does all of its work
inside that single critical section, so operations on one shard are
linearizable and the store and the policy can never be observed out of step.
Policy hooks are plain method calls made while the lock is held; nothing
re-acquires it.
*/
type Shard[K comparable, V any] struct {

	// store holds the actual key → value data for this shard.
	store Store[K, V]

	// policy decides which key should be removed when this shard runs out of space.
	// Each shard has its OWN policy instance.
	policy eviction.Policy[K]

	// capacity is the maximum number of entries this shard may hold.
	capacity int

	mu sync.Mutex
}

// NewShard builds a shard. capacity must be positive; the caller validates it.
func NewShard[K comparable, V any](capacity int, policy eviction.Policy[K]) *Shard[K, V] {
	return &Shard[K, V]{
		store:    NewMapStore[K, V](capacity),
		policy:   policy,
		capacity: capacity,
	}
}

/*
Put inserts or updates key.

 1. Key present   → replace the value, tell the policy about the touch.
 2. Key absent, shard full → ask the policy for a victim, drop it from the
    store, then insert and register the new key.
 3. Key absent, room left  → insert and register.

It returns the evicted key, if any.
*/
func (s *Shard[K, V]) Put(key K, value V) (evicted K, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.store.Get(key); exists {
		s.store.Put(key, value)
		s.policy.OnUpdate(key)
		return evicted, false
	}

	if s.store.Len() >= s.capacity {
		evicted, ok = s.policy.Evict()
		if !ok {
			// the policy tracks every stored key, so a full shard always has a victim
			panic("shard: eviction policy out of sync with store")
		}
		s.store.Delete(evicted)
	}

	s.store.Put(key, value)
	s.policy.OnPut(key)
	return evicted, ok
}

// Get returns the value for key and reports the read to the policy.
// Misses never touch policy state.
func (s *Shard[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.store.Get(key)
	if ok {
		s.policy.OnGet(key)
	}
	return v, ok
}

// Remove deletes key from the store and the policy. It reports whether key was present.
func (s *Shard[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.Get(key); !ok {
		return false
	}
	s.store.Delete(key)
	s.policy.Remove(key)
	return true
}

// Len returns how many entries are stored.
func (s *Shard[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// Keys returns the stored keys in eviction order, next victim first.
func (s *Shard[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy.Keys()
}

// Capacity returns the maximum number of entries.
func (s *Shard[K, V]) Capacity() int {
	return s.capacity
}
