// Shared helpers for rolodex CLI commands.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/rolodex/internal/memory"
	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// attachStore creates the backend named by cfg and attaches it.
// The caller must defer store.Detach().
func attachStore(cfg types.Config) (types.RecordStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var store types.RecordStore
	switch cfg.Backend {
	case types.BackendMemory:
		store = memory.NewStore()
	case types.BackendSQLite:
		store = sqlite.NewStore()
	default:
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}

	if err := store.Attach(cfg); err != nil {
		return nil, err
	}
	return store, nil
}
