package types

import (
	"fmt"
	"reflect"
)

// CacheEntry is one key/value pair held by the cache.
// Keys only need identity comparison; values are opaque.
type CacheEntry[K comparable, V any] struct {
	Key   K
	Value V
}

/*
IsNil reports whether v is the "absent" sentinel for its type.

Go has no universal null, so the cache treats these as absent:
  - a nil interface
  - a nil pointer, map, slice, func or channel

Everything else (including zero strings and zero numbers) is a real value.
*/
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// KeyString renders a key as a string for shard hashing and eviction output.
func KeyString[K comparable](key K) string {
	switch k := any(key).(type) {
	case string:
		return k
	case fmt.Stringer:
		return k.String()
	default:
		return fmt.Sprintf("%v", key)
	}
}
