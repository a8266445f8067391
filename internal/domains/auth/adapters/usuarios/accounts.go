// Package usuarios adapts the usuarios service to the auth Accounts port.
package usuarios

import (
	"context"
	"errors"
	"fmt"

	"github.com/petcare/petcare-api/internal/domains/auth/ports"
	usuarioapp "github.com/petcare/petcare-api/internal/domains/usuarios/application"
	usuariodomain "github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	usuarioports "github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// Accounts translates usuarios errors into auth errors.
type Accounts struct {
	usuarios usuarioports.Service
}

func NewAccounts(usuarios usuarioports.Service) *Accounts {
	return &Accounts{usuarios: usuarios}
}

func (a *Accounts) Register(ctx context.Context, nome, email, senha string) (*projection.Projection[*usuariodomain.Usuario], error) {
	created, err := a.usuarios.Create(ctx, usuarioports.CreateInput{Nome: nome, Email: email, Senha: senha})
	if errors.Is(err, usuarioports.ErrDuplicateEmail) {
		return nil, fmt.Errorf("%w: %w", ports.ErrEmailTaken, err)
	}
	return created, err
}

func (a *Accounts) Authenticate(ctx context.Context, email, senha string) (*projection.Projection[*usuariodomain.Usuario], error) {
	found, err := a.usuarios.Authenticate(ctx, email, senha)
	if errors.Is(err, usuarioapp.ErrInvalidCredentials) {
		return nil, ports.ErrInvalidCredentials
	}
	return found, err
}

func (a *Accounts) GetByID(ctx context.Context, id int64) (*projection.Projection[*usuariodomain.Usuario], error) {
	found, err := a.usuarios.GetByID(ctx, id)
	if errors.Is(err, usuarioports.ErrNotFound) {
		return nil, ports.ErrUnknownUsuario
	}
	return found, err
}

var _ ports.Accounts = (*Accounts)(nil)
