package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No config file anywhere on the search path.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, types.BackendMemory, cfg.Backend)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, types.BackendSQLite, cfg.Backend)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: postgres\n"), 0o644))

	_, err := loadConfig(path)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestAttachStoreSelectsBackend(t *testing.T) {
	for _, backend := range []string{types.BackendMemory, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			store, err := attachStore(types.Config{Backend: backend})
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Detach() })

			all, err := store.All()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestAttachStoreRejectsBadConfig(t *testing.T) {
	_, err := attachStore(types.Config{})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)
}
