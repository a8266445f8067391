package ports

import (
	"context"
	"errors"

	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var (
	ErrNotFound = errors.New("produto not found")
	// ErrPetMissing is returned when the referenced pet does not exist.
	ErrPetMissing = errors.New("pet informado não existe")
	// ErrNoPet is returned when a produto is not linked to any pet.
	ErrNoPet = errors.New("produto sem pet associado")
)

// Repository persists produtos. Update writes only the listed API fields.
type Repository interface {
	Create(ctx context.Context, produto *domain.Produto) (*projection.Projection[*domain.Produto], error)
	Update(ctx context.Context, produto *domain.Produto, fields []string) (*projection.Projection[*domain.Produto], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Produto], error)
	List(ctx context.Context) ([]*projection.Projection[*domain.Produto], error)
	ListByPet(ctx context.Context, petID int64) ([]*projection.Projection[*domain.Produto], error)
	CountByPet(ctx context.Context, petID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
