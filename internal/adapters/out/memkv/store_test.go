package memkv_test

import (
	"testing"

	"rentalvoice/internal/adapters/out/memkv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetGet(t *testing.T) {
	ctx := t.Context()
	store := memkv.NewStore()

	require.NoError(t, store.Set(ctx, "order:1", "a"))

	value, found, err := store.Get(ctx, "order:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a", value)

	_, found, err = store.Get(ctx, "order:2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreSetOverwrites(t *testing.T) {
	ctx := t.Context()
	store := memkv.NewStore()

	require.NoError(t, store.Set(ctx, "order:1", "a"))
	require.NoError(t, store.Set(ctx, "order:1", "b"))

	value, found, err := store.Get(ctx, "order:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b", value)
}

func TestStoreListFiltersByPrefix(t *testing.T) {
	ctx := t.Context()
	store := memkv.NewStore()

	require.NoError(t, store.Set(ctx, "order:2", "b"))
	require.NoError(t, store.Set(ctx, "order:1", "a"))
	require.NoError(t, store.Set(ctx, "config:theme", "dark"))

	keys, err := store.List(ctx, "order:")
	require.NoError(t, err)
	assert.Equal(t, []string{"order:1", "order:2"}, keys)

	keys, err = store.List(ctx, "missing:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
