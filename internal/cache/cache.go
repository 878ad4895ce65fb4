// Package cache provides the in-memory entity cache shared by the remote API clients.
// It wraps patrickmn/go-cache with typed access and a partial flag recording
// whether the cached set is known to mirror the full server listing.
package cache

import (
	"sort"
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// Store caches entities of one kind by key.
//
// Entries never expire; they live until Remove or Reset. Partial is set when
// an entry was added by a single-key fetch, which means All cannot be trusted
// to answer "does X exist" until a full listing clears the flag again.
// mu guards the entries and the flag together.
type Store[T any] struct {
	mu      sync.RWMutex
	items   *gocache.Cache
	partial bool
}

// New creates an empty store.
func New[T any]() *Store[T] {
	return &Store[T]{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get returns the entity cached under key.
func (s *Store[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.get(key)
}

func (s *Store[T]) get(key string) (T, bool) {
	var zero T
	v, ok := s.items.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Lookup returns the entity cached under key. On a miss the store is marked
// partial in the same critical section, before the caller fetches key alone.
func (s *Store[T]) Lookup(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.get(key)
	if !ok {
		s.partial = true
	}
	return t, ok
}

// Has reports whether key is cached.
func (s *Store[T]) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items.Get(key)
	return ok
}

// Put caches value under key, replacing any previous entry.
func (s *Store[T]) Put(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Set(key, value, gocache.NoExpiration)
}

// Remove drops key from the store.
func (s *Store[T]) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Delete(key)
}

// All returns a copy of the cached entities.
func (s *Store[T]) All() map[string]T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.items.Items()
	out := make(map[string]T, len(items))
	for k, item := range items {
		if t, ok := item.Object.(T); ok {
			out[k] = t
		}
	}
	return out
}

// Keys returns the cached keys in sorted order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.items.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of cached entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.ItemCount()
}

// Replace swaps the whole content for a fresh listing and clears the partial flag.
func (s *Store[T]) Replace(entries map[string]T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Flush()
	for k, v := range entries {
		s.items.Set(k, v, gocache.NoExpiration)
	}
	s.partial = false
}

// MarkPartial records that the store may be missing entries the server has.
func (s *Store[T]) MarkPartial() {
	s.mu.Lock()
	s.partial = true
	s.mu.Unlock()
}

// Partial reports whether the store may be missing server entries.
func (s *Store[T]) Partial() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.partial
}

// Reset empties the store and clears the partial flag.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Flush()
	s.partial = false
}

// Stats reports cache statistics.
type Stats struct {
	ItemCount int  `json:"item_count"`
	Partial   bool `json:"partial"`
}

// GetStats returns current cache statistics.
func (s *Store[T]) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{ItemCount: s.items.ItemCount(), Partial: s.partial}
}
