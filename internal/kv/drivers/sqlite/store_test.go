package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/socialsched/socialsched/internal/kv"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "sched.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.ApplyMigrations())
	return store
}

func TestStoreGetSetDelete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.Get("missing")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Set("k", []byte(`{"a":1}`)))
	got, err := store.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), got)

	// Set replaces.
	require.NoError(t, store.Set("k", []byte(`{"a":2}`)))
	got, err = store.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":2}`), got)

	require.NoError(t, store.Delete("k"))
	_, err = store.Get("k")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Delete("k"))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sched.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.ApplyMigrations())
	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	// Migrations are idempotent on an up-to-date database.
	require.NoError(t, reopened.ApplyMigrations())

	got, err := reopened.Get("k")
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)
}
