package cache

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

/*
loadGroup deduplicates concurrent loads of the same key.

singleflight groups calls by string, and two different keys can print the
same (1 and "1" as any, or a Stringer with a non-unique String). So every
key in flight gets its own numeric ticket, handed out under mu and
compared with ==, and the ticket is what singleflight sees.
*/
type loadGroup[K comparable] struct {
	sf singleflight.Group

	mu      sync.Mutex
	tickets map[K]*ticket
	next    uint64
}

// ticket is the group key for one K while at least one caller is loading it.
type ticket struct {
	id   string
	refs int
}

func (g *loadGroup[K]) Do(key K, fn func() (any, error)) (any, error) {
	t := g.acquire(key)
	defer g.release(key, t)

	res, err, _ := g.sf.Do(t.id, fn)
	return res, err
}

func (g *loadGroup[K]) acquire(key K) *ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tickets == nil {
		g.tickets = make(map[K]*ticket)
	}
	t, ok := g.tickets[key]
	if !ok {
		g.next++
		t = &ticket{id: strconv.FormatUint(g.next, 10)}
		g.tickets[key] = t
	}
	t.refs++
	return t
}

func (g *loadGroup[K]) release(key K, t *ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()

	t.refs--
	if t.refs == 0 {
		delete(g.tickets, key)
	}
}
