// This file implements LFU eviction.

package eviction

// freqBucket groups every key that currently has the same access count.
// Buckets form a doubly-linked list sorted by ascending freq.
type freqBucket[K comparable] struct {
	freq int

	// keys holds the bucket members in the order they reached this frequency.
	keys *keyList[K]

	prev *freqBucket[K]
	next *freqBucket[K]
}

/*
lfu evicts the key with the lowest access count.

Layout:
-------
head → [freq 1: a, d] ⇄ [freq 3: b] ⇄ [freq 4: c]

  - Every key lives in exactly one bucket.
  - A touch moves the key to the bucket with freq+1, creating it next door if needed.
  - The lowest bucket is always head, so eviction never scans.

Ties: among keys sharing the lowest count, the one that reached that count
first is evicted. For keys never touched after insertion that is simply the
oldest insert.
*/
type lfu[K comparable] struct {
	// items lets us find the bucket for a key
	items map[K]*freqBucket[K]

	// head is the bucket with the smallest frequency
	head *freqBucket[K]
}

func newLFU[K comparable]() *lfu[K] {
	return &lfu[K]{items: make(map[K]*freqBucket[K])}
}

// OnGet counts a successful read.
func (l *lfu[K]) OnGet(k K) {
	l.touch(k)
}

// OnPut is called when a new key is added. New keys start with frequency 1.
func (l *lfu[K]) OnPut(k K) {
	if _, ok := l.items[k]; ok {
		return
	}

	b := l.head
	if b == nil || b.freq != 1 {
		b = &freqBucket[K]{freq: 1, keys: newKeyList[K]()}
		l.insertAfter(nil, b)
	}
	b.keys.pushBack(k)
	l.items[k] = b
}

// OnUpdate counts overwriting a value as an access.
func (l *lfu[K]) OnUpdate(k K) {
	l.touch(k)
}

// Evict drops the oldest key from the lowest-frequency bucket.
func (l *lfu[K]) Evict() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}
	b := l.head
	k, _ := b.keys.popFront()
	delete(l.items, k)
	if b.keys.len() == 0 {
		l.unlink(b)
	}
	return k, true
}

// Remove forgets k and its counter.
func (l *lfu[K]) Remove(k K) {
	b, ok := l.items[k]
	if !ok {
		return
	}
	b.keys.remove(k)
	delete(l.items, k)
	if b.keys.len() == 0 {
		l.unlink(b)
	}
}

// Keys walks buckets from the lowest frequency up.
func (l *lfu[K]) Keys() []K {
	out := make([]K, 0, len(l.items))
	for b := l.head; b != nil; b = b.next {
		out = append(out, b.keys.keys()...)
	}
	return out
}

func (l *lfu[K]) Len() int { return len(l.items) }

// frequency reports the access count of k.
func (l *lfu[K]) frequency(k K) (int, bool) {
	b, ok := l.items[k]
	if !ok {
		return 0, false
	}
	return b.freq, true
}

// touch moves k from its bucket to the freq+1 bucket.
func (l *lfu[K]) touch(k K) {
	cur, ok := l.items[k]
	if !ok {
		// Key not tracked; nothing to do
		return
	}

	target := cur.next
	if target == nil || target.freq != cur.freq+1 {
		target = &freqBucket[K]{freq: cur.freq + 1, keys: newKeyList[K]()}
		l.insertAfter(cur, target)
	}

	cur.keys.remove(k)
	target.keys.pushBack(k)
	l.items[k] = target

	// If that bucket becomes empty, clean it up
	if cur.keys.len() == 0 {
		l.unlink(cur)
	}
}

// insertAfter links b right after prev; a nil prev makes b the new head.
func (l *lfu[K]) insertAfter(prev, b *freqBucket[K]) {
	b.prev = prev
	if prev == nil {
		b.next = l.head
		if l.head != nil {
			l.head.prev = b
		}
		l.head = b
		return
	}
	b.next = prev.next
	if prev.next != nil {
		prev.next.prev = b
	}
	prev.next = b
}

func (l *lfu[K]) unlink(b *freqBucket[K]) {
	if b.prev != nil {
		b.prev.next = b.next
	} else {
		l.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	}
	b.prev = nil
	b.next = nil
}
