package cache

import "context"

/*
Cache defines the PUBLIC API of the bounded cache.
This is a contract that guarantees certain behaviors, without exposing internals.
Storage, eviction order, locking and sharding are hidden behind it.
*/
type Cache[K comparable, V any] interface {

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- nil key or nil value: ignored, nothing changes
		- key present: value replaced, size unchanged, no eviction
		  (LRU and LIFO treat it as recent, LFU counts it, FIFO ignores it)
		- key absent and cache full: the policy picks a victim, the victim is
		  removed and reported to the eviction notifier, then the key is stored
		- key absent and room left: the key is stored
	*/
	Put(key K, value V)

	/*
		Get retrieves the value associated with the given key.

		Returns false for nil or absent keys. A hit counts as a touch for
		LRU (recency) and LFU (frequency). Misses never change policy state.
	*/
	Get(key K) (V, bool)

	/*
		GetOrLoad is a read-through Get.

		On a miss the configured Loader is called once per key, even if many
		goroutines miss together, and the result is stored with Put.
	*/
	GetOrLoad(ctx context.Context, key K) (V, error)

	/*
		Remove deletes a key from the cache immediately.

		This is an invalidation, not an eviction: the eviction notifier is NOT called.
		Removing a missing key is safe and returns false.
	*/
	Remove(key K) bool

	// Len returns how many entries are stored.
	Len() int

	// Capacity returns the maximum number of entries, fixed at construction.
	Capacity() int

	// Keys returns the stored keys in eviction order, next victim first.
	Keys() []K
}
