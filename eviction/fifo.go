// This file implements FIFO eviction.

package eviction

type fifo[K comparable] struct {
	// order keeps keys in the order they were inserted.
	// The front is the oldest key.
	order *keyList[K]
}

func newFIFO[K comparable]() *fifo[K] {
	return &fifo[K]{order: newKeyList[K]()}
}

// OnGet is a no-op. FIFO ignores reads completely.
func (f *fifo[K]) OnGet(K) {}

// OnPut enqueues a new key at the back.
func (f *fifo[K]) OnPut(k K) {
	f.order.pushBack(k)
}

// OnUpdate is a no-op. FIFO only cares about the first insertion.
func (f *fifo[K]) OnUpdate(K) {}

// Evict returns the oldest key still present.
func (f *fifo[K]) Evict() (K, bool) {
	return f.order.popFront()
}

func (f *fifo[K]) Remove(k K) {
	f.order.remove(k)
}

func (f *fifo[K]) Keys() []K { return f.order.keys() }

func (f *fifo[K]) Len() int { return f.order.len() }
