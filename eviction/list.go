package eviction

// listNode represents ONE key inside a keyList.
type listNode[K comparable] struct {
	key K

	// prev points towards the front (older end)
	prev *listNode[K]

	// next points towards the back (newer end)
	next *listNode[K]
}

/*
keyList is a doubly-linked list of keys with a key → node index.

FIFO, LIFO and LRU are all "ordered sequence" policies; they only differ in
which end they evict from and which events move a key. The index lets every
operation (push, pop, move, remove) run in O(1).

The front is the oldest end, the back the newest.
*/
type keyList[K comparable] struct {
	nodes map[K]*listNode[K]
	head  *listNode[K]
	tail  *listNode[K]
}

func newKeyList[K comparable]() *keyList[K] {
	return &keyList[K]{nodes: make(map[K]*listNode[K])}
}

func (l *keyList[K]) len() int { return len(l.nodes) }

func (l *keyList[K]) contains(k K) bool {
	_, ok := l.nodes[k]
	return ok
}

// pushBack appends k at the newest end. Keys already present are left alone.
func (l *keyList[K]) pushBack(k K) {
	if _, ok := l.nodes[k]; ok {
		return
	}
	n := &listNode[K]{key: k}
	l.nodes[k] = n
	l.link(n)
}

// moveToBack marks k as the newest key.
func (l *keyList[K]) moveToBack(k K) {
	n, ok := l.nodes[k]
	if !ok || l.tail == n {
		return
	}
	l.unlink(n)
	l.link(n)
}

func (l *keyList[K]) remove(k K) bool {
	n, ok := l.nodes[k]
	if !ok {
		return false
	}
	l.unlink(n)
	delete(l.nodes, k)
	return true
}

func (l *keyList[K]) popFront() (K, bool) {
	if l.head == nil {
		var zero K
		return zero, false
	}
	k := l.head.key
	l.remove(k)
	return k, true
}

func (l *keyList[K]) popBack() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	k := l.tail.key
	l.remove(k)
	return k, true
}

// keys returns front to back.
func (l *keyList[K]) keys() []K {
	out := make([]K, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

// keysReversed returns back to front.
func (l *keyList[K]) keysReversed() []K {
	out := make([]K, 0, len(l.nodes))
	for n := l.tail; n != nil; n = n.prev {
		out = append(out, n.key)
	}
	return out
}

// link attaches n at the back of the list.
func (l *keyList[K]) link(n *listNode[K]) {
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n

	// If the list was empty, head and tail are the same
	if l.head == nil {
		l.head = n
	}
}

// unlink detaches n, fixing head and tail when needed.
func (l *keyList[K]) unlink(n *listNode[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}
