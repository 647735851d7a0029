package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/krisalay/boundedcache/notify"
	"github.com/krisalay/boundedcache/types"
)

// ErrNoLoader is returned by Load when the engine has no Loader.
var ErrNoLoader = errors.New("cache: no loader configured")

/*
CacheEngine is the "brain" of the cache system.
It is responsible for what happens AROUND storage, NOT storage itself.

It decides:
- Who hears about evictions (Notifier)
- How hits, misses, evictions and loads are counted (Metrics)
- How data is loaded on a read-through miss (Loader)
- Where diagnostic logs go (Logger)

It does NOT:
- Store data
- Handle locking
- Decide eviction order
*/
type CacheEngine[K comparable, V any] struct {

	// Notifier is told about every evicted key, exactly once per eviction.
	Notifier notify.Notifier[K]

	// Loader is how the cache fetches values it does NOT have.
	// If nil, read-through lookups fail with ErrNoLoader.
	Loader types.Loader[K, V]

	// Metrics keeps track of hits, misses, evictions and loads.
	Metrics types.Metrics

	// Logger receives debug logs about evictions and warnings about failed loads.
	Logger *slog.Logger
}

/*
NewCacheEngine creates a CacheEngine.
Every argument may be nil; nil notifier, metrics and logger get no-op defaults.
*/
func NewCacheEngine[K comparable, V any](
	notifier notify.Notifier[K],
	loader types.Loader[K, V],
	metrics types.Metrics,
	logger *slog.Logger,
) *CacheEngine[K, V] {

	// Ensure hooks are always non-nil
	// so the hot path never checks for nil
	if notifier == nil {
		notifier = notify.Noop[K]{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &CacheEngine[K, V]{
		Notifier: notifier,
		Loader:   loader,
		Metrics:  metrics,
		Logger:   logger,
	}
}

// OnHit is called when a lookup finds its key.
func (e *CacheEngine[K, V]) OnHit(K) {
	e.Metrics.Hit()
}

// OnMiss is called when a lookup does not find its key.
func (e *CacheEngine[K, V]) OnMiss(K) {
	e.Metrics.Miss()
}

/*
OnEvict is called once per eviction, after the cache lock has been released.

- Records the eviction metric
- Logs it at debug level
- Fires the notifier
*/
func (e *CacheEngine[K, V]) OnEvict(key K) {
	e.Metrics.Eviction()
	e.Logger.Debug("cache eviction", slog.Any("key", key))
	e.Notifier.Evicted(key)
}

/*
Load is used when the cache does NOT have the data.
Errors from the loader are wrapped with the key for context.
*/
func (e *CacheEngine[K, V]) Load(ctx context.Context, key K) (V, error) {
	var zero V
	if e.Loader == nil {
		return zero, ErrNoLoader
	}

	e.Metrics.Load()
	v, err := e.Loader.Load(ctx, key)
	if err != nil {
		e.Logger.WarnContext(ctx, "cache load failed",
			slog.Any("key", key),
			slog.String("error", err.Error()))
		return zero, fmt.Errorf("cache: load %v: %w", key, err)
	}
	return v, nil
}
