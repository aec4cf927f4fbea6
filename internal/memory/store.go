// Package memory implements the in-memory storage backend for rolodex.
package memory

import (
	"sort"
	"sync"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// valueKey is the identity a record is deduplicated on. ID is metadata
// and deliberately not part of it.
type valueKey struct {
	name  string
	email string
	age   int
}

// Store implements types.RecordStore with plain maps under a mutex.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	records  map[valueKey]types.Record
	nextID   int
}

// NewStore creates a new in-memory store instance.
// The store is not attached; call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the store with the given configuration.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.config = config
	s.records = make(map[valueKey]types.Record)
	s.nextID = 0
	s.attached = true
	return nil
}

// Detach releases the store's state. Idempotent.
// After Detach, operations return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}
	s.records = nil
	s.attached = false
	return nil
}

// Add assigns the next ID to r and stores it. A record equal by
// (Name, Email, Age) to a stored one is silently not retained; the
// assigned ID is burned either way and returned to the caller.
func (s *Store) Add(r types.Record) (types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.Record{}, types.ErrStoreDetached
	}
	if r.Age < 0 {
		return types.Record{}, types.ErrInvalidAge
	}

	r.ID = s.nextID
	s.nextID++

	key := valueKey{name: r.Name, email: r.Email, age: r.Age}
	if _, exists := s.records[key]; !exists {
		s.records[key] = r
	}
	return r, nil
}

// All returns every retained record in ascending ID order.
func (s *Store) All() ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	return s.sortedLocked(), nil
}

// QueryByKey returns all records whose field named by key equals value,
// in ascending ID order. Returns ErrTypeMismatch when the value's kind
// does not match the key's expected kind.
func (s *Store) QueryByKey(key types.Key, value types.Value) ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, types.ErrStoreDetached
	}
	if value.Kind() != key.Kind() {
		return nil, types.ErrTypeMismatch
	}

	matches := make([]types.Record, 0)
	for _, r := range s.sortedLocked() {
		field, err := r.Field(key)
		if err != nil {
			return nil, err
		}
		if field.Equal(value) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// sortedLocked returns the records sorted by ascending ID.
// The caller must hold s.mu.
func (s *Store) sortedLocked() []types.Record {
	out := make([]types.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
