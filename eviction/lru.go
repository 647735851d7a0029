// This file implements LRU eviction.

package eviction

// lru is the concrete implementation of the LRU eviction policy.
type lru[K comparable] struct {
	// recency orders keys from least recently touched (front)
	// to most recently touched (back).
	recency *keyList[K]
}

func newLRU[K comparable]() *lru[K] {
	return &lru[K]{recency: newKeyList[K]()}
}

// OnGet is called whenever a key is read from the cache. If a key is accessed,
// it becomes "recently used", so it moves to the back of the list.
func (l *lru[K]) OnGet(k K) {
	l.recency.moveToBack(k)
}

// OnPut adds a new key as the most recently used one.
func (l *lru[K]) OnPut(k K) {
	l.recency.pushBack(k)
}

// OnUpdate treats overwriting a value as a touch.
func (l *lru[K]) OnUpdate(k K) {
	l.recency.moveToBack(k)
}

// Evict removes the LEAST recently used key, which always sits at the front.
func (l *lru[K]) Evict() (K, bool) {
	return l.recency.popFront()
}

func (l *lru[K]) Remove(k K) {
	l.recency.remove(k)
}

func (l *lru[K]) Keys() []K { return l.recency.keys() }

func (l *lru[K]) Len() int { return l.recency.len() }
