package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "auth", "token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means signed out")

	require.NoError(t, store.Save("tok-abc"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)

	// save overwrites the single slot
	require.NoError(t, store.Save("tok-def"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-def", token)
}

func TestFileTokenStoreClear(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	require.NoError(t, store.Clear(), "clearing an empty slot is fine")

	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok"))
	token, _ = store.Load()
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	token, _ = store.Load()
	assert.Empty(t, token)
}
