package ports

import (
	"context"
	"errors"

	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var (
	ErrNotFound = errors.New("pet not found")
	// ErrOwnerMissing is returned when the referenced usuario does not exist.
	ErrOwnerMissing = errors.New("usuario informado não existe")
	// ErrReferenced is returned when produtos still point at the pet.
	ErrReferenced = errors.New("pet still referenced")
)

// Repository persists pets. Update writes only the listed API fields.
type Repository interface {
	Create(ctx context.Context, pet *domain.Pet) (*projection.Projection[*domain.Pet], error)
	Update(ctx context.Context, pet *domain.Pet, fields []string) (*projection.Projection[*domain.Pet], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*projection.Projection[*domain.Pet], error)
	ListByUsuario(ctx context.Context, usuarioID int64) ([]*projection.Projection[*domain.Pet], error)
	CountByUsuario(ctx context.Context, usuarioID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}
