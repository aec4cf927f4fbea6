// Package sqlite implements a RecordStore backend over an in-memory
// SQLite database. Nothing is ever written to disk: the database lives
// in a named shared-cache memory region so every connection in the
// database/sql pool sees the same tables, and it vanishes on Detach.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Compile-time interface check: Store must implement RecordStore.
var _ types.RecordStore = (*Store)(nil)

// Store implements types.RecordStore using SQLite as the query engine.
// The ID counter lives on the store, not in SQLite, so a duplicate add
// burns an ID exactly like the memory backend.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	nextID   int
}

// NewStore creates a new SQLite store instance.
// The store is not attached; call Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach opens the in-memory database and initializes the schema.
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

	// A uuid-named shared-cache region keeps this store's database
	// private to it while letting all pool connections share it.
	dsn := fmt.Sprintf("file:rolodex-%s?mode=memory&cache=shared", uuid.New().String())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	s.db = db
	s.config = config
	s.nextID = 0
	s.attached = true
	return nil
}

// Detach closes the database, discarding all records. Idempotent.
// After Detach, operations return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil // idempotent
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// Add assigns the next ID to r and inserts it. The UNIQUE index on
// (name, email, age) rejects value-duplicates; the insert is silently
// skipped and the assigned ID is burned, matching the memory backend.
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

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO records (id, name, email, age) VALUES (?, ?, ?, ?)",
		r.ID, r.Name, r.Email, r.Age,
	)
	if err != nil {
		return types.Record{}, fmt.Errorf("inserting record: %w", err)
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
	return s.scan("SELECT id, name, email, age FROM records ORDER BY id")
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

	column, err := columnFor(key)
	if err != nil {
		return nil, err
	}

	var arg any
	if value.Kind() == types.KindInt {
		arg = value.Int()
	} else {
		arg = value.Text()
	}

	query := fmt.Sprintf("SELECT id, name, email, age FROM records WHERE %s = ? ORDER BY id", column)
	return s.scan(query, arg)
}

// columnFor maps a key to its column name. The mapping is a fixed
// switch so no caller-supplied text ever reaches the SQL.
func columnFor(key types.Key) (string, error) {
	switch key {
	case types.KeyName:
		return "name", nil
	case types.KeyEmail:
		return "email", nil
	case types.KeyAge:
		return "age", nil
	case types.KeyID:
		return "id", nil
	default:
		return "", types.ErrUnknownKey
	}
}

// scan runs query and hydrates the rows into records.
// The caller must hold s.mu and have checked s.attached.
func (s *Store) scan(query string, args ...any) ([]types.Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]types.Record, 0)
	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Age); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}
