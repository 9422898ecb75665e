package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends, проверяемые общим контрактом Store
func testStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStore_SetGetRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			value := []byte(`{"hello":"world"}`)
			require.NoError(t, store.Set(context.Background(), "bookings", value))

			got, err := store.Get(context.Background(), "bookings")
			require.NoError(t, err)
			assert.Equal(t, value, got)
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(context.Background(), "k", []byte("v1")))
			require.NoError(t, store.Set(context.Background(), "k", []byte("v2")))

			got, err := store.Get(context.Background(), "k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), got)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
			require.NoError(t, store.Delete(context.Background(), "k"))

			_, err := store.Get(context.Background(), "k")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// Удаление отсутствующего ключа - no-op
			assert.NoError(t, store.Delete(context.Background(), "k"))
		})
	}
}

func TestMemoryStore_ReturnsDefensiveCopies(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "k", []byte("abc")))

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "schedule_config", []byte(`{"a":1}`)))

	second, err := NewFileStore(dir)
	require.NoError(t, err)

	got, err := second.Get(context.Background(), "schedule_config")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)
}
