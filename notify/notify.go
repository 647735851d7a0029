// Package notify delivers eviction events.
//
// A Notifier is invoked exactly once per eviction with the evicted key.
// The cache calls it after releasing its lock, so a notifier may call back
// into the cache, and different evictions may be delivered concurrently.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/krisalay/boundedcache/types"
)

// Notifier receives evicted keys.
type Notifier[K comparable] interface {
	Evicted(key K)
}

// Func adapts a plain function to Notifier.
type Func[K comparable] func(key K)

func (f Func[K]) Evicted(key K) { f(key) }

// Noop ignores every eviction.
type Noop[K comparable] struct{}

func (Noop[K]) Evicted(K) {}

// Writer prints one "DISCARD: <key>" line per eviction.
type Writer[K comparable] struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a Writer printing to w.
func NewWriter[K comparable](w io.Writer) *Writer[K] {
	return &Writer[K]{w: w}
}

func (n *Writer[K]) Evicted(key K) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "DISCARD: %s\n", types.KeyString(key))
}

// Logger records each eviction as a structured log entry.
type Logger[K comparable] struct {
	log   *slog.Logger
	level slog.Level
}

// NewLogger returns a Logger writing at level.
func NewLogger[K comparable](log *slog.Logger, level slog.Level) *Logger[K] {
	return &Logger[K]{log: log, level: level}
}

func (n *Logger[K]) Evicted(key K) {
	n.log.LogAttrs(context.Background(), n.level, "DISCARD", slog.Any("key", key))
}

// Multi fans one eviction out to several notifiers, in order.
type Multi[K comparable] []Notifier[K]

func (m Multi[K]) Evicted(key K) {
	for _, n := range m {
		n.Evicted(key)
	}
}
