package ports

import (
	"context"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// PetDirectory resolves pets for produtos. The pets repository satisfies it.
type PetDirectory interface {
	Exists(ctx context.Context, petID int64) (bool, error)
	GetByID(ctx context.Context, petID int64) (*projection.Projection[*petdomain.Pet], error)
}
