package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("personal.name", "Ada"))
	require.NoError(t, store.Set("github.timeout_seconds", int64(10)))

	assert.Equal(t, "Ada", store.GetString("personal.name"))
	assert.Equal(t, 10, store.GetInt("github.timeout_seconds"))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("list", []any{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, store.GetStringSlice("list"))

	require.NoError(t, store.Set("typed", []string{"c"}))
	assert.Equal(t, []string{"c"}, store.GetStringSlice("typed"))
}
