// Package store provides the in-memory ordered entity store shared by all
// domain packages. A store is seeded once at construction; reads return
// snapshots and writes produce a new sequence, so a caller can never observe
// a partially-applied mutation.
package store

import (
	"errors"
	"sync"
)

// ErrDuplicateID is returned when an entity with the same id already exists.
var ErrDuplicateID = errors.New("duplicate entity id")

// Entity is anything with a unique string identifier.
type Entity interface {
	Key() string
}

// Store holds an ordered sequence of entities of one kind. Insertion order is
// preserved and is the default display order.
type Store[E Entity] struct {
	mu    sync.RWMutex
	items []E
}

// New creates a store seeded with the given entities, in order.
func New[E Entity](seed ...E) *Store[E] {
	items := make([]E, len(seed))
	copy(items, seed)
	return &Store[E]{items: items}
}

// Snapshot returns a copy of the current sequence.
func (s *Store[E]) Snapshot() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of entities in the store.
func (s *Store[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the entity with the given id.
func (s *Store[E]) Get(id string) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.Key() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Prepend inserts a new entity at the front of the sequence (newest-first).
// Ids must be unique within a store.
func (s *Store[E]) Prepend(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.Key() == e.Key() {
			return ErrDuplicateID
		}
	}
	next := make([]E, 0, len(s.items)+1)
	next = append(next, e)
	next = append(next, s.items...)
	s.items = next
	return nil
}

// Update replaces the entity with the given id by fn's result, leaving all
// other entities unchanged. A lookup miss is a silent no-op; the return value
// reports whether anything changed.
func (s *Store[E]) Update(id string, fn func(E) E) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.Key() == id {
			next := make([]E, len(s.items))
			copy(next, s.items)
			next[i] = fn(e)
			s.items = next
			return true
		}
	}
	return false
}

// Delete removes the entity with the given id. A lookup miss is a silent
// no-op; the return value reports whether anything changed.
func (s *Store[E]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.items {
		if e.Key() == id {
			next := make([]E, 0, len(s.items)-1)
			next = append(next, s.items[:i]...)
			next = append(next, s.items[i+1:]...)
			s.items = next
			return true
		}
	}
	return false
}
