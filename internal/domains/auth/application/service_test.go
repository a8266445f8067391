package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/petcare-api/internal/domains/auth/adapters/memory"
	"github.com/petcare/petcare-api/internal/domains/auth/adapters/token"
	"github.com/petcare/petcare-api/internal/domains/auth/adapters/usuarios"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
	usuariomemory "github.com/petcare/petcare-api/internal/domains/usuarios/adapters/memory"
	"github.com/petcare/petcare-api/internal/domains/usuarios/adapters/security"
	usuarioapp "github.com/petcare/petcare-api/internal/domains/usuarios/application"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fixture struct {
	svc      *Service
	usuarios *usuarioapp.Service
	jwt      *token.JWT
	sessions *memory.SessionStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	sessions := memory.NewSessionStore()
	usuarioSvc := usuarioapp.NewService(usuariomemory.NewRepository(), security.NewBcryptHasher(4),
		usuarioapp.WithSessionRevoker(sessions))
	signer, err := token.NewJWT(testSecret, time.Hour)
	require.NoError(t, err)
	return fixture{
		svc:      NewService(usuarios.NewAccounts(usuarioSvc), signer, sessions),
		usuarios: usuarioSvc,
		jwt:      signer,
		sessions: sessions,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.svc.Register(ctx, ports.RegisterInput{Nome: "Ana", Email: "ana@example.com", Password: "segredo1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Entity.SenhaHash)

	_, err = f.svc.Register(ctx, ports.RegisterInput{Nome: "Outra", Email: "ana@example.com", Password: "segredo1"})
	require.ErrorIs(t, err, ErrRegistration)
	require.ErrorIs(t, err, ports.ErrEmailTaken)

	result, err := f.svc.Login(ctx, "ana@example.com", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, TokenType, result.TokenType)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, created.Entity.ID, result.Usuario.Entity.ID)

	identity, err := f.jwt.Verify(result.AccessToken)
	require.NoError(t, err)
	session, err := f.sessions.Get(ctx, identity.TokenID)
	require.NoError(t, err)
	assert.Equal(t, created.Entity.ID, session.UsuarioID)

	me, err := f.svc.Me(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", me.Entity.Email)

	require.NoError(t, f.svc.Logout(ctx, identity))
	_, err = f.sessions.Get(ctx, identity.TokenID)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Register(ctx, ports.RegisterInput{Nome: "Ana", Email: "ana@example.com", Password: "segredo1"})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "ana@example.com", "errada")
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.svc.Login(ctx, "ninguem@example.com", "segredo1")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestMeAfterUsuarioDeleted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created, err := f.svc.Register(ctx, ports.RegisterInput{Nome: "Ana", Email: "ana@example.com", Password: "segredo1"})
	require.NoError(t, err)
	result, err := f.svc.Login(ctx, "ana@example.com", "segredo1")
	require.NoError(t, err)
	identity, err := f.jwt.Verify(result.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.usuarios.Delete(ctx, created.Entity.ID))

	_, err = f.svc.Me(ctx, identity)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.sessions.Get(ctx, identity.TokenID)
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestLoginCapsSessionAtTTL(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc.sessionTTL = time.Minute
	_, err := f.svc.Register(ctx, ports.RegisterInput{Nome: "Ana", Email: "ana@example.com", Password: "segredo1"})
	require.NoError(t, err)

	result, err := f.svc.Login(ctx, "ana@example.com", "segredo1")
	require.NoError(t, err)
	identity, err := f.jwt.Verify(result.AccessToken)
	require.NoError(t, err)
	session, err := f.sessions.Get(ctx, identity.TokenID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), session.ExpiresAt, 5*time.Second)
}
