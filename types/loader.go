package types

import "context"

// Loader is the contract between the cache and whatever produces values on a miss.
type Loader[K comparable, V any] interface {

	/*
		Load is called when the cache misses during a read-through lookup.
		1. Cache checks memory → key not found
		2. Cache calls Load(key) (once, even if many goroutines missed together)
		3. Cache stores the result in memory
		4. Cache returns the value
	*/
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Load calls f(ctx, key).
func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
