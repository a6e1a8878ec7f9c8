package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"mandir/internal/metrics"
)

// Key identifies one cached read: a logical resource name followed by its
// parameters, e.g. NewKey("devotees", searchTerm).
type Key []string

func NewKey(parts ...string) Key {
	return Key(parts)
}

// keySep joins tuple segments. The unit separator keeps distinct tuples
// distinct even when a segment contains ordinary punctuation.
const keySep = "\x1f"

func (k Key) String() string {
	return strings.Join(k, keySep)
}

// FetchFunc loads the value for a key from the backing store.
type FetchFunc func(ctx context.Context) (any, error)

type flight struct {
	done chan struct{}
	data any
	err  error
}

type entry struct {
	data      any
	fetchedAt time.Time
	valid     bool
	stale     bool
	flight    *flight
}

// Store caches reads keyed by resource tuples. Concurrent fetches for an
// identical key share one backing call; invalidation by key prefix marks
// entries stale so the next observation refetches. A fetch completing after
// its entry was invalidated is discarded and retried, so a stale response
// never overwrites a fresher one.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*entry
}

// NewStore creates a Store. ttl <= 0 keeps entries fresh until invalidated.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

func (s *Store) fresh(e *entry) bool {
	if !e.valid || e.stale {
		return false
	}
	if s.ttl > 0 && time.Since(e.fetchedAt) >= s.ttl {
		return false
	}
	return true
}

// Fetch returns the cached value for key, or runs fn to load it. Errors are
// propagated to every waiter and never cached.
func (s *Store) Fetch(ctx context.Context, key Key, fn FetchFunc) (any, error) {
	k := key.String()
	for {
		s.mu.Lock()
		e := s.entries[k]
		if e == nil {
			e = &entry{}
			s.entries[k] = e
		}
		if s.fresh(e) {
			data := e.data
			s.mu.Unlock()
			metrics.CacheHit(key.Resource())
			return data, nil
		}
		if e.flight != nil {
			f := e.flight
			s.mu.Unlock()
			select {
			case <-f.done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if f.err != nil {
				return nil, f.err
			}
			// Re-check the entry: the shared result may have been
			// invalidated while in flight.
			continue
		}

		f := &flight{done: make(chan struct{})}
		e.flight = f
		e.stale = false
		s.mu.Unlock()

		metrics.CacheMiss(key.Resource())
		data, err := fn(ctx)

		s.mu.Lock()
		f.data, f.err = data, err
		e.flight = nil
		invalidated := e.stale
		if err == nil && !invalidated {
			e.data = data
			e.fetchedAt = time.Now()
			e.valid = true
		}
		s.mu.Unlock()
		close(f.done)

		if err != nil {
			return nil, err
		}
		if invalidated {
			continue
		}
		return data, nil
	}
}

// Invalidate marks stale every entry whose key starts with one of the given
// prefixes. Prefix matching is per tuple segment: Key{"devotees"} covers
// Key{"devotees", "ram"} but not Key{"devotees-list"}.
func (s *Store) Invalidate(prefixes ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		for _, p := range prefixes {
			if matchPrefix(k, p.String()) {
				e.stale = true
				metrics.CacheInvalidation(p.Resource())
				break
			}
		}
	}
}

// Resource returns the logical name segment of the key
func (k Key) Resource() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

func matchPrefix(key, prefix string) bool {
	if !strings.HasPrefix(key, prefix) {
		return false
	}
	return len(key) == len(prefix) || key[len(prefix)] == keySep[0]
}

// Resolve is a typed wrapper over Store.Fetch for callers that know the
// concrete value type of a resource.
func Resolve[T any](ctx context.Context, s *Store, key Key, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := s.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cached value for %q is %T, not %T", key.String(), v, zero)
	}
	return out, nil
}
