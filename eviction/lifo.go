// This file implements LIFO eviction.

package eviction

type lifo[K comparable] struct {
	// stack keeps keys in insertion order.
	// The back is the newest key and the next victim.
	stack *keyList[K]
}

func newLIFO[K comparable]() *lifo[K] {
	return &lifo[K]{stack: newKeyList[K]()}
}

// OnGet is a no-op. Reads never change LIFO order.
func (l *lifo[K]) OnGet(K) {}

// OnPut pushes a new key on top of the stack.
func (l *lifo[K]) OnPut(k K) {
	l.stack.pushBack(k)
}

// OnUpdate moves a re-put key back on top, making it the next eviction candidate.
func (l *lifo[K]) OnUpdate(k K) {
	l.stack.moveToBack(k)
}

// Evict pops the top of the stack.
func (l *lifo[K]) Evict() (K, bool) {
	return l.stack.popBack()
}

func (l *lifo[K]) Remove(k K) {
	l.stack.remove(k)
}

// Keys lists the stack top first.
func (l *lifo[K]) Keys() []K { return l.stack.keysReversed() }

func (l *lifo[K]) Len() int { return l.stack.len() }
