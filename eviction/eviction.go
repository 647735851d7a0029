package eviction

import (
	"errors"
	"fmt"
	"strings"
)

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

// ErrUnknownPolicy is returned when a PolicyType is not one of the supported strategies.
var ErrUnknownPolicy = errors.New("eviction: unknown policy")

/*
Policy is the interface that all eviction strategies must follow.

This is a set of rules that any eviction algorithm (FIFO, LIFO, LRU, LFU)
must obey so the rest of the cache can interact with it in a uniform way.

The cache does NOT care how eviction works internally. It only calls these
methods, always while holding the lock that also guards the entry store, so
implementations are not safe for concurrent use on their own.
*/
type Policy[K comparable] interface {

	// OnGet is called whenever a key is read successfully.
	//
	// - LRU moves the key to the most recently used end
	// - LFU bumps its frequency counter
	// - FIFO and LIFO ignore it
	OnGet(K)

	// OnPut is called when a NEW key is admitted to the cache.
	OnPut(K)

	// OnUpdate is called when an existing key gets a new value.
	OnUpdate(K)

	// Remove is called when a key is explicitly removed
	// from the cache (not evicted).
	Remove(K)

	// Evict is called when the cache is FULL and needs space.
	// It forgets the victim and returns it; the cache then deletes it from storage.
	// ok is false only when nothing is tracked.
	Evict() (key K, ok bool)

	// Keys returns the tracked keys in eviction order, next victim first.
	Keys() []K

	// Len returns how many keys are tracked.
	Len() int
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// FIFO (First In First Out): Evicts the oldest inserted key, regardless of access.
	FIFO PolicyType = "FIFO"

	// LIFO (Last In First Out): Evicts the most recently inserted (or re-put) key.
	LIFO PolicyType = "LIFO"

	// LRU (Least Recently Used): Evicts the key that has NOT been touched for the longest time.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): Evicts the key that has been accessed the fewest times.
	LFU PolicyType = "LFU"
)

// PolicyTypes lists every supported strategy.
var PolicyTypes = []PolicyType{FIFO, LIFO, LRU, LFU}

// ParsePolicyType turns a case-insensitive name like "lru" into a PolicyType.
func ParsePolicyType(s string) (PolicyType, error) {
	t := PolicyType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
	return t, nil
}

// Valid reports whether t names a supported strategy.
func (t PolicyType) Valid() bool {
	switch t {
	case FIFO, LIFO, LRU, LFU:
		return true
	}
	return false
}

// UnmarshalText lets PolicyType be decoded from env vars and text config.
func (t *PolicyType) UnmarshalText(text []byte) error {
	p, err := ParsePolicyType(string(text))
	if err != nil {
		return err
	}
	*t = p
	return nil
}

func (t PolicyType) String() string { return string(t) }

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy[K comparable](t PolicyType) (Policy[K], error) {
	switch t {
	case FIFO:
		return newFIFO[K](), nil
	case LIFO:
		return newLIFO[K](), nil
	case LRU:
		return newLRU[K](), nil
	case LFU:
		return newLFU[K](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(t))
	}
}
