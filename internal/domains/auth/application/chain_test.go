package application

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/petcare-api/internal/domains/auth/adapters/memory"
	"github.com/petcare/petcare-api/internal/domains/auth/adapters/token"
	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

func request(method, route, authorization string) *Request {
	header := http.Header{}
	if authorization != "" {
		header.Set("Authorization", authorization)
	}
	return &Request{Method: method, Route: route, Header: header}
}

func TestChainAllowListSkipsStages(t *testing.T) {
	chain := NewDefaultChain(nil, nil)
	for _, route := range PublicRoutes {
		identity, err := chain.Authorize(context.Background(), request(route.Method, route.Path, ""))
		require.NoError(t, err, route)
		assert.Nil(t, identity)
	}
}

func TestChainStages(t *testing.T) {
	ctx := context.Background()
	signer, err := token.NewJWT(testSecret, time.Hour)
	require.NoError(t, err)
	sessions := memory.NewSessionStore()
	chain := NewDefaultChain(signer, sessions)

	issued, err := signer.Issue(5)
	require.NoError(t, err)

	_, err = chain.Authorize(ctx, request(http.MethodGet, "/pets", ""))
	var rejection *Rejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "bearer_token", rejection.Stage)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = chain.Authorize(ctx, request(http.MethodGet, "/pets", "Basic abc"))
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = chain.Authorize(ctx, request(http.MethodGet, "/pets", "Bearer garbage"))
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "jwt_verifier", rejection.Stage)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)

	_, err = chain.Authorize(ctx, request(http.MethodGet, "/pets", "Bearer "+issued.Token))
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "session_validator", rejection.Stage)
	assert.ErrorIs(t, err, ErrRevoked)

	require.NoError(t, sessions.Save(ctx, issued.Session))
	identity, err := chain.Authorize(ctx, request(http.MethodGet, "/pets", "bearer "+issued.Token))
	require.NoError(t, err)
	assert.Equal(t, int64(5), identity.UsuarioID)

	require.NoError(t, sessions.Delete(ctx, issued.Session.TokenID))
	_, err = chain.Authorize(ctx, request(http.MethodGet, "/auth/me", "Bearer "+issued.Token))
	assert.ErrorIs(t, err, ErrRevoked)
}

type brokenStore struct{ ports.SessionStore }

func (brokenStore) Get(context.Context, string) (*domain.Session, error) {
	return nil, errors.New("connection refused")
}

func TestChainInfrastructureErrorIsNotRejection(t *testing.T) {
	signer, err := token.NewJWT(testSecret, time.Hour)
	require.NoError(t, err)
	issued, err := signer.Issue(5)
	require.NoError(t, err)

	chain := NewDefaultChain(signer, brokenStore{})
	_, err = chain.Authorize(context.Background(), request(http.MethodGet, "/pets", "Bearer "+issued.Token))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := ContextWithIdentity(context.Background(), domain.Identity{UsuarioID: 3, TokenID: "t"})
	identity, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(3), identity.UsuarioID)
}
