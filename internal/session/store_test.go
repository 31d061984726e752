package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Create(ctx, "some-token")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	token, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "some-token", token)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.Create(ctx, "some-token")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unknown id is not an error
	assert.NoError(t, store.Delete(ctx, "no-such-session"))
}

func TestMemoryStoreIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a, err := store.Create(ctx, "token-a")
	require.NoError(t, err)
	b, err := store.Create(ctx, "token-b")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
