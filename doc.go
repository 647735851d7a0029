/*
Package cache is a bounded in-memory key-value cache with pluggable eviction.

A cache holds at most Capacity entries. When a new key arrives at a full
cache, the configured policy picks one victim:

	FIFO  the oldest inserted key
	LIFO  the most recently inserted (or re-put) key
	LRU   the least recently read or written key
	LFU   the least frequently read or written key; ties go to the key
	      that reached that frequency first

Every eviction is reported exactly once to the engine's Notifier with the
evicted key. notify.Writer prints the classic "DISCARD: <key>" line.

	c := cache.MustNew[string, string](4, eviction.LRU,
		engine.NewCacheEngine[string, string](notify.NewWriter[string](os.Stdout), nil, nil, nil))
	c.Put("A", "alpha")
	v, ok := c.Get("A")

Cache guards its store and policy with one mutex, so calls are linearizable.
Sharded spreads keys over several such caches when contention matters more
than a global eviction order.
*/
package cache
