package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_RevokeSession(t *testing.T) {
	ctx := context.Background()
	store := NewTokenStore(newMapCache())

	revoked, err := store.IsSessionRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeSession(ctx, "jti-1", time.Minute))

	revoked, err = store.IsSessionRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsSessionRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStore_ExpiredTokenIsNotStored(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	store := NewTokenStore(c)

	require.NoError(t, store.RevokeSession(ctx, "jti-1", 0))
	assert.Empty(t, c.data)
}
