package main

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/krisalay/boundedcache"
	api "github.com/krisalay/boundedcache/api"
	"github.com/krisalay/boundedcache/eviction"
)

// ================= BENCHMARK =================

func main() {
	fmt.Println("\n================ CACHE LOAD BENCHMARK =================")

	// ---------------- Cache Config ----------------
	const (
		shards      = 8
		capacity    = 200000
		preloadKeys = 100000
		goroutines  = 200
		opsPerG     = 5000
	)

	fmt.Println("CONFIG")
	fmt.Println("---------------------------------")
	fmt.Println("Shards       :", shards)
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Preload Keys :", preloadKeys)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------")

	keys := make([]string, preloadKeys*2)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}

	for _, pt := range eviction.PolicyTypes {
		single := cache.MustNew[string, int](capacity, pt, nil)
		sharded, err := cache.NewSharded[string, int](capacity, shards, pt, nil)
		if err != nil {
			panic(err)
		}

		for _, c := range []struct {
			name  string
			cache api.Cache[string, int]
		}{{"single", single}, {"sharded", sharded}} {
			// ---------------- Preload Cache ----------------
			for i := 0; i < preloadKeys; i++ {
				c.cache.Put(keys[i], i)
			}

			// ---------------- Load Test ----------------
			start := time.Now()

			wg := sync.WaitGroup{}
			wg.Add(goroutines)

			for g := 0; g < goroutines; g++ {
				go func(id int) {
					defer wg.Done()
					for j := 0; j < opsPerG; j++ {
						// one write in ten; keys past the preload are new and may evict
						k := keys[(id*opsPerG+j)%len(keys)]
						if j%10 == 0 {
							c.cache.Put(k, j)
						} else {
							c.cache.Get(k)
						}
					}
				}(g)
			}

			wg.Wait()

			duration := time.Since(start)
			totalOps := goroutines * opsPerG

			fmt.Printf("\n================ %s / %s =================\n", pt, c.name)
			fmt.Printf("Total Operations : %d\n", totalOps)
			fmt.Printf("Total Time       : %v\n", duration)
			fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
			fmt.Printf("Resident Keys    : %d / %d\n", c.cache.Len(), c.cache.Capacity())
		}
	}
	fmt.Println("=========================================")
}
