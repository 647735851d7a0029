package shard_test

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/boundedcache/eviction"
	"github.com/krisalay/boundedcache/shard"
)

func newShard(t *testing.T, capacity int, pt eviction.PolicyType) *shard.Shard[string, int] {
	t.Helper()
	p, err := eviction.NewEvictionPolicy[string](pt)
	require.NoError(t, err)
	return shard.NewShard[string, int](capacity, p)
}

// assertLockstep reads every policy key back through Get, proving store and
// policy track the same set. Get touches LRU/LFU, so call it last.
func assertLockstep(t *testing.T, s *shard.Shard[string, int]) {
	t.Helper()
	keys := s.Keys()
	require.Len(t, keys, s.Len())
	for _, k := range keys {
		_, ok := s.Get(k)
		assert.True(t, ok, "policy tracks %q but store does not", k)
	}
}

func TestShard_CapacityInvariant(t *testing.T) {
	t.Parallel()

	for _, pt := range eviction.PolicyTypes {
		t.Run(string(pt), func(t *testing.T) {
			s := newShard(t, 3, pt)
			evictions := 0
			for i := range 20 {
				if _, ok := s.Put(fmt.Sprintf("k%d", i), i); ok {
					evictions++
				}
				assert.LessOrEqual(t, s.Len(), 3)
			}
			assert.Equal(t, 17, evictions)
			assertLockstep(t, s)
		})
	}
}

func TestShard_UpdateDoesNotEvict(t *testing.T) {
	t.Parallel()

	for _, pt := range eviction.PolicyTypes {
		t.Run(string(pt), func(t *testing.T) {
			s := newShard(t, 2, pt)
			s.Put("A", 1)
			s.Put("B", 2)

			_, evicted := s.Put("A", 10)
			assert.False(t, evicted)
			assert.Equal(t, 2, s.Len())

			v, ok := s.Get("A")
			require.True(t, ok)
			assert.Equal(t, 10, v)
		})
	}
}

func TestShard_ReferenceScenarios(t *testing.T) {
	t.Parallel()

	tests := map[eviction.PolicyType]struct {
		reads  []string
		victim string
		left   []string
	}{
		eviction.FIFO: {victim: "A", left: []string{"B", "C"}},
		eviction.LIFO: {victim: "B", left: []string{"A", "C"}},
		eviction.LRU:  {reads: []string{"A"}, victim: "B", left: []string{"A", "C"}},
		eviction.LFU:  {reads: []string{"A", "A"}, victim: "B", left: []string{"A", "C"}},
	}

	for pt, tc := range tests {
		t.Run(string(pt), func(t *testing.T) {
			s := newShard(t, 2, pt)
			s.Put("A", 1)
			s.Put("B", 2)
			for _, k := range tc.reads {
				_, ok := s.Get(k)
				require.True(t, ok)
			}

			victim, ok := s.Put("C", 3)
			require.True(t, ok)
			assert.Equal(t, tc.victim, victim)

			left := s.Keys()
			sort.Strings(left)
			assert.Equal(t, tc.left, left)
		})
	}
}

func TestShard_Remove(t *testing.T) {
	t.Parallel()

	s := newShard(t, 2, eviction.LRU)
	s.Put("A", 1)
	s.Put("B", 2)

	assert.True(t, s.Remove("A"))
	assert.False(t, s.Remove("A"))
	assert.Equal(t, 1, s.Len())

	// freed slot means no eviction
	_, evicted := s.Put("C", 3)
	assert.False(t, evicted)
	assertLockstep(t, s)
}

func TestShard_MissDoesNotTouchPolicy(t *testing.T) {
	t.Parallel()

	s := newShard(t, 2, eviction.LFU)
	s.Put("A", 1)
	s.Put("B", 2)

	_, ok := s.Get("Z")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "B"}, s.Keys())
}

func TestShard_ConcurrentDisjointKeys(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 50
	s := newShard(t, workers*perWorker, eviction.LRU)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := range perWorker {
				k := fmt.Sprintf("w%d-%d", w, i)
				s.Put(k, i)
				v, ok := s.Get(k)
				assert.True(t, ok)
				assert.Equal(t, i, v)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, s.Len())
	assertLockstep(t, s)
}

func TestHashSelector_Stable(t *testing.T) {
	t.Parallel()

	shards := []*shard.Shard[string, int]{
		newShard(t, 1, eviction.FIFO),
		newShard(t, 1, eviction.FIFO),
		newShard(t, 1, eviction.FIFO),
	}
	sel := shard.HashSelector[string, int]{}

	seen := make(map[*shard.Shard[string, int]]bool)
	for i := range 100 {
		k := fmt.Sprintf("key-%d", i)
		first := sel.Select(k, shards)
		assert.Same(t, first, sel.Select(k, shards))
		seen[first] = true
	}
	assert.Len(t, seen, 3)
}
