package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	cache "github.com/krisalay/boundedcache"
	"github.com/krisalay/boundedcache/config"
	"github.com/krisalay/boundedcache/engine"
	"github.com/krisalay/boundedcache/eviction"
	"github.com/krisalay/boundedcache/metrics"
	"github.com/krisalay/boundedcache/notify"
	"github.com/krisalay/boundedcache/types"
)

// ================= BACKING STORE =================

var errNotFound = errors.New("store: not found")

type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]string)}
}

func (s *InMemoryStore) Load(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fmt.Println("STORE  → load:", key)
	v, ok := s.data[key]
	if !ok {
		return "", errNotFound
	}
	return v, nil
}

func (s *InMemoryStore) Put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// ================= SCENARIOS =================

type step struct {
	op, key, value string
}

func put(k, v string) step { return step{op: "put", key: k, value: v} }
func get(k string) step    { return step{op: "get", key: k} }

// scenarios replays the classic puts/gets for every policy.
var scenarios = map[eviction.PolicyType][]step{
	eviction.FIFO: {
		put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
		put("E", "Battery"), put("C", "Street"), put("F", "Mission"), put("G", "San Francisco"),
	},
	eviction.LIFO: {
		put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
		put("E", "Battery"), put("C", "Street"), put("F", "Mission"), put("G", "San Francisco"),
	},
	eviction.LRU: {
		put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
		get("B"), put("E", "Battery"), put("C", "Street"), get("A"), get("B"), get("C"),
		put("F", "Mission"), put("G", "San Francisco"), put("H", "H"), put("I", "I"),
	},
	eviction.LFU: {
		put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
		get("B"), put("E", "Battery"), put("C", "Street"), get("A"), get("B"), get("C"),
		put("F", "Mission"), put("G", "San Francisco"), put("H", "H"), put("I", "I"),
	},
}

func runScenario(pt eviction.PolicyType, capacity int, eng *engine.CacheEngine[string, string]) error {
	c, err := cache.New(capacity, pt, eng)
	if err != nil {
		return err
	}
	for _, s := range scenarios[pt] {
		switch s.op {
		case "put":
			c.Put(s.key, s.value)
		case "get":
			v, ok := c.Get(s.key)
			fmt.Printf("CACHE  → GET %s = %q (found=%t)\n", s.key, v, ok)
		}
	}
	fmt.Println("CACHE  → keys, next victim first:", c.Keys())
	return nil
}

// ================= MAIN =================

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY :", cfg.Policy)
	fmt.Println("CAPACITY        :", cfg.Capacity)
	fmt.Println("SHARDS          :", cfg.Shards)

	// ---------------- Metrics ----------------
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg, cfg.MetricsNamespace)

	discard := notify.NewWriter[string](os.Stdout)

	// ====================================================
	for i, pt := range eviction.PolicyTypes {
		fmt.Printf("\n==================== %d) %s ====================\n", i+1, pt)
		eng := engine.NewCacheEngine[string, string](discard, nil, m, logger)
		if err := runScenario(pt, cfg.Capacity, eng); err != nil {
			return err
		}
	}

	// ====================================================
	fmt.Println("\n==================== 5) READ-THROUGH + SINGLEFLIGHT ====================")

	store := NewInMemoryStore()
	store.Put("a", "alpha")
	store.Put("b", "beta")

	eng := engine.NewCacheEngine[string, string](
		notify.Multi[string]{discard, notify.NewLogger[string](logger, slog.LevelDebug)},
		types.Loader[string, string](store),
		m,
		logger,
	)
	configured, err := cache.NewFromConfig(cfg, eng)
	if err != nil {
		return err
	}

	wg := sync.WaitGroup{}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			val, err := configured.GetOrLoad(ctx, "b")
			fmt.Printf("GOROUTINE-%d → GET b = %v (err=%v)\n", id, val, err)
		}(i)
	}
	wg.Wait()

	if _, err := configured.GetOrLoad(ctx, "missing"); err != nil {
		fmt.Println("CACHE  → GET missing:", err)
	}

	// ====================================================
	fmt.Println("\n==================== 6) CONFIGURED CACHE EVICTION ====================")

	for i := 0; i < cfg.Capacity+2; i++ {
		configured.Put(fmt.Sprintf("k%d", i), fmt.Sprint(i))
	}
	fmt.Println("CACHE  → len", configured.Len(), "of", configured.Capacity())

	// ====================================================
	fmt.Println("\n==================== METRICS ====================")
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			fmt.Printf("%-40s: %.0f\n", mf.GetName(), metric.GetCounter().GetValue())
		}
	}
	return nil
}
