// Package store provides the in-memory record store backing every entity
// kind. One Store instance owns one record kind for the process lifetime.
package store

import (
	"context"
	"fmt"
	"sync"

	"fintrack/internal/core"
)

// Entity is implemented by every record kind a Store can hold.
type Entity[T any] interface {
	EntityID() int
	WithID(id int) T
}

// Store is a mutex-guarded in-memory collection. Every read returns copies,
// so callers can never mutate stored state through a result.
type Store[T Entity[T]] struct {
	mu    sync.Mutex
	kind  string
	delay Delayer
	items []T
	// lastID is the highest identifier ever assigned or seeded, so deleted
	// ids are never handed out again within a session.
	lastID int
}

// New creates a store seeded with copies of the given records. A nil delayer
// means no artificial latency.
func New[T Entity[T]](kind string, seed []T, delay Delayer) *Store[T] {
	if delay == nil {
		delay = Nop()
	}
	s := &Store[T]{
		kind:  kind,
		delay: delay,
		items: append([]T(nil), seed...),
	}
	for _, item := range s.items {
		if item.EntityID() > s.lastID {
			s.lastID = item.EntityID()
		}
	}
	return s
}

// Kind returns the record kind label used in error messages.
func (s *Store[T]) Kind() string { return s.kind }

// GetAll returns a defensive copy of the full collection.
func (s *Store[T]) GetAll(ctx context.Context) []T {
	s.delay.Wait(OpList)
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// GetByID returns the matching record or core.ErrNotFound.
func (s *Store[T]) GetByID(ctx context.Context, id int) (T, error) {
	s.delay.Wait(OpGet)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.EntityID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", s.kind, id, core.ErrNotFound)
}

// Create assigns max(existing ids, 0)+1 as the new identifier and stores a
// copy. Identifiers are never reused after deletion within a session.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	s.delay.Wait(OpCreate)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	stored := rec.WithID(s.lastID)
	s.items = append(s.items, stored)
	return stored, nil
}

// Update replaces the record with apply(existing). The merge semantics live
// in the typed patch the caller passes in; omitted fields persist.
func (s *Store[T]) Update(ctx context.Context, id int, apply func(T) T) (T, error) {
	s.delay.Wait(OpUpdate)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.EntityID() == id {
			// Re-pin the identifier so a patch can never move a record.
			updated := apply(item).WithID(id)
			s.items[i] = updated
			return updated, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %d: %w", s.kind, id, core.ErrNotFound)
}

// Delete removes the record permanently. Returns core.ErrNotFound when the
// identifier is absent.
func (s *Store[T]) Delete(ctx context.Context, id int) (bool, error) {
	s.delay.Wait(OpDelete)
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, fmt.Errorf("%s %d: %w", s.kind, id, core.ErrNotFound)
}

// Filter returns copies of all records matching the predicate, in insertion
// order. The predicate must not mutate its argument.
func (s *Store[T]) Filter(ctx context.Context, pred func(T) bool) []T {
	s.delay.Wait(OpList)
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []T
	for _, item := range s.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the current record count.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
