package countcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SetGet(t *testing.T) {
	store := openTempStore(t)

	key := Key([]string{"0xabc", "0xdef"})
	require.NoError(t, store.Set(key, 1234))

	count, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), count)
}

func TestStore_GetMissing(t *testing.T) {
	store := openTempStore(t)

	_, err := store.Get(Key([]string{"0xnothing"}))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKey_OrderAndCaseInsensitive(t *testing.T) {
	a := Key([]string{"0xABC", " 0xdef"})
	b := Key([]string{"0xdef", "0xabc"})
	assert.Equal(t, a, b)
}
