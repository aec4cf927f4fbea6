package types

import "errors"

// RecordStore defines the interface for backend-agnostic record storage.
// Callers attach to a backend, add and query records, and detach when
// done. Backends are single-owner today; implementations still guard
// their state with a mutex so reuse in a concurrent caller stays safe.
type RecordStore interface {
	// Attach initializes the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrStoreDetached.
	Detach() error

	// Add stores a record. The input ID is ignored; the store assigns
	// the next counter value and returns the record carrying it. The
	// counter advances even when the record is then rejected as a
	// duplicate of a stored one by (Name, Email, Age) — the duplicate
	// is silently not retained, and the caller still sees the fresh ID.
	// A negative Age is ErrInvalidAge.
	Add(r Record) (Record, error)

	// All returns every retained record in ascending ID order,
	// recomputed on each call.
	All() ([]Record, error)

	// QueryByKey returns all records whose field named by key equals
	// value, ascending by ID. A value whose kind does not match the
	// key's expected kind is ErrTypeMismatch. Zero matches is an empty
	// result, not an error.
	QueryByKey(key Key, value Value) ([]Record, error)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Query and record errors.
var (
	ErrTypeMismatch = errors.New("value kind does not match key")
	ErrUnknownKey   = errors.New("unknown key")
	ErrNotANumber   = errors.New("value is not a number")
	ErrInvalidAge   = errors.New("age must be non-negative")
)
