//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
	"github.com/petcare/petcare-api/internal/platform/redis/redistest"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	client := redistest.Start(t)
	store := NewSessionStore(client)
	ctx := context.Background()
	future := time.Now().Add(time.Hour)

	require.NoError(t, store.Save(ctx, domain.Session{TokenID: "a", UsuarioID: 1, ExpiresAt: future}))
	require.NoError(t, store.Save(ctx, domain.Session{TokenID: "b", UsuarioID: 1, ExpiresAt: future}))
	require.NoError(t, store.Save(ctx, domain.Session{TokenID: "c", UsuarioID: 2, ExpiresAt: future}))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UsuarioID)

	ttl, err := client.TTL(ctx, sessionKey("a")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Minute)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	require.NoError(t, store.DeleteByUsuario(ctx, 1))
	_, err = store.Get(ctx, "b")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(ctx, "c")
	assert.NoError(t, err)
}
