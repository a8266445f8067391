package ports

import (
	"context"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// CreateInput carries a new usuario with its plain-text password.
type CreateInput struct {
	Nome  string
	Email string
	Senha string
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Nome  *string
	Email *string
	Senha *string
}

// Service exposes usuario bounded context use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*projection.Projection[*domain.Usuario], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Usuario], error)
	ListPets(ctx context.Context, id int64) ([]*projection.Projection[*petdomain.Pet], error)
	Create(ctx context.Context, input CreateInput) (*projection.Projection[*domain.Usuario], error)
	Update(ctx context.Context, id int64, input UpdateInput) (*projection.Projection[*domain.Usuario], error)
	Delete(ctx context.Context, id int64) error
	Authenticate(ctx context.Context, email, senha string) (*projection.Projection[*domain.Usuario], error)
}
