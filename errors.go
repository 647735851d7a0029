package cache

import (
	"errors"

	"github.com/krisalay/boundedcache/config"
	"github.com/krisalay/boundedcache/engine"
	"github.com/krisalay/boundedcache/eviction"
)

var (
	// ErrInvalidCapacity is returned when a cache is built with capacity <= 0.
	ErrInvalidCapacity = config.ErrInvalidCapacity

	// ErrInvalidShards is returned when a sharded cache is built with
	// shards <= 0 or more shards than capacity.
	ErrInvalidShards = config.ErrInvalidShards

	// ErrNilKey is returned by GetOrLoad for a nil key.
	ErrNilKey = errors.New("cache: nil key")

	// ErrUnknownPolicy is returned for a PolicyType the cache does not implement.
	ErrUnknownPolicy = eviction.ErrUnknownPolicy

	// ErrNoLoader is returned by GetOrLoad when the engine has no Loader.
	ErrNoLoader = engine.ErrNoLoader
)
