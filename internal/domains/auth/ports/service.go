package ports

import (
	"context"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	usuariodomain "github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// RegisterInput is the payload of a self-service signup.
type RegisterInput struct {
	Nome     string
	Email    string
	Password string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64
	Usuario     *projection.Projection[*usuariodomain.Usuario]
}

// Service exposes the auth use cases.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*projection.Projection[*usuariodomain.Usuario], error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context, identity domain.Identity) (*projection.Projection[*usuariodomain.Usuario], error)
	Logout(ctx context.Context, identity domain.Identity) error
}
