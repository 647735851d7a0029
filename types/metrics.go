package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache calls these
methods whenever something happens. Implementations must be safe for concurrent use.
*/
type Metrics interface {

	// Hit is called when a lookup finds the key.
	Hit()

	// Miss is called when a lookup does NOT find the key.
	Miss()

	// Eviction is called when a key is removed because the cache is full and needs space.
	Eviction()

	// Load is called when a read-through lookup invokes the Loader.
	Load()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

If someone does not care about metrics, the cache still works without
nil checks around every metrics call.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Load()     {}
