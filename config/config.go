// Package config loads cache settings from the environment.
//
// An optional .env file in the working directory is read first, then
// variables are parsed into Config with caarlos0/env:
//
//	CACHE_CAPACITY           maximum number of entries (default 4)
//	CACHE_POLICY             FIFO, LIFO, LRU or LFU, any case (default LRU)
//	CACHE_SHARDS             number of independent shards (default 1)
//	CACHE_METRICS_NAMESPACE  Prometheus namespace (default boundedcache)
//	CACHE_LOG_LEVEL          DEBUG, INFO, WARN or ERROR (default INFO)
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/krisalay/boundedcache/eviction"
)

// DefaultCapacity is the reference capacity shared by every policy.
const DefaultCapacity = 4

// The cache package re-exports these, so one errors.Is works for both.
var (
	ErrInvalidCapacity = errors.New("capacity must be greater than zero")
	ErrInvalidShards   = errors.New("shard count must be between 1 and capacity")
)

// Config holds everything needed to build a cache.
type Config struct {
	Capacity         int                 `env:"CACHE_CAPACITY" envDefault:"4"`
	Policy           eviction.PolicyType `env:"CACHE_POLICY" envDefault:"LRU"`
	Shards           int                 `env:"CACHE_SHARDS" envDefault:"1"`
	MetricsNamespace string              `env:"CACHE_METRICS_NAMESPACE" envDefault:"boundedcache"`
	LogLevel         slog.Level          `env:"CACHE_LOG_LEVEL" envDefault:"INFO"`
}

// DefaultConfig returns the same values the env defaults produce.
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		Policy:           eviction.LRU,
		Shards:           1,
		MetricsNamespace: "boundedcache",
		LogLevel:         slog.LevelInfo,
	}
}

// Load reads .env files (if present) and the environment into a validated Config.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on error, for use at startup.
func MustLoad(filenames ...string) Config {
	cfg, err := Load(filenames...)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate rejects settings that would produce undefined eviction behaviour.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.Capacity)
	}
	if c.Shards <= 0 || c.Shards > c.Capacity {
		return fmt.Errorf("%w: got %d for capacity %d", ErrInvalidShards, c.Shards, c.Capacity)
	}
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: %q", eviction.ErrUnknownPolicy, string(c.Policy))
	}
	return nil
}
