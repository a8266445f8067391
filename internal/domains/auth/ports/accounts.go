package ports

import (
	"context"
	"errors"

	usuariodomain "github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrEmailTaken         = errors.New("email já cadastrado")
	ErrUnknownUsuario     = errors.New("usuario not found")
)

// Accounts is the view of the usuarios context that auth needs.
type Accounts interface {
	Register(ctx context.Context, nome, email, senha string) (*projection.Projection[*usuariodomain.Usuario], error)
	Authenticate(ctx context.Context, email, senha string) (*projection.Projection[*usuariodomain.Usuario], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*usuariodomain.Usuario], error)
}
