package application

import (
	"context"
	"time"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
	usuariodomain "github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// TokenType is the scheme clients send tokens with.
const TokenType = "Bearer"

// DefaultSessionTTL applies when no session lifetime is configured.
const DefaultSessionTTL = 24 * time.Hour

// Service implements register, login, me and logout.
type Service struct {
	accounts   ports.Accounts
	issuer     ports.TokenIssuer
	sessions   ports.SessionStore
	sessionTTL time.Duration
	now        func() time.Time
}

type Option func(*Service)

// WithSessionTTL bounds how long a session survives in the store.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

func NewService(accounts ports.Accounts, issuer ports.TokenIssuer, sessions ports.SessionStore, opts ...Option) *Service {
	s := &Service{
		accounts:   accounts,
		issuer:     issuer,
		sessions:   sessions,
		sessionTTL: DefaultSessionTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Register(ctx context.Context, input ports.RegisterInput) (*projection.Projection[*usuariodomain.Usuario], error) {
	created, err := s.accounts.Register(ctx, input.Nome, input.Email, input.Password)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// Login verifies the credentials, issues a token and records its session.
func (s *Service) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	usuario, err := s.accounts.Authenticate(ctx, email, password)
	if err != nil {
		return nil, mapError(err)
	}
	issued, err := s.issuer.Issue(usuario.Entity.ID)
	if err != nil {
		return nil, err
	}
	session := issued.Session
	if limit := s.now().Add(s.sessionTTL).UTC(); session.ExpiresAt.IsZero() || limit.Before(session.ExpiresAt) {
		session.ExpiresAt = limit
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &ports.LoginResult{
		AccessToken: issued.Token,
		TokenType:   TokenType,
		ExpiresIn:   int64(issued.ExpiresIn / time.Second),
		Usuario:     usuario,
	}, nil
}

// Me returns the usuario behind an identity; a deleted usuario is unauthorized.
func (s *Service) Me(ctx context.Context, identity domain.Identity) (*projection.Projection[*usuariodomain.Usuario], error) {
	usuario, err := s.accounts.GetByID(ctx, identity.UsuarioID)
	if err != nil {
		return nil, mapError(err)
	}
	return usuario, nil
}

// Logout revokes the session of the presented token.
func (s *Service) Logout(ctx context.Context, identity domain.Identity) error {
	return s.sessions.Delete(ctx, identity.TokenID)
}

var _ ports.Service = (*Service)(nil)
