package ports

import (
	"context"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	produtodomain "github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// Service defines the pets use cases exposed to adapters (inbound/driving port).
type Service interface {
	List(ctx context.Context) ([]*projection.Projection[*domain.Pet], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error)
	ListProdutos(ctx context.Context, id int64) ([]*projection.Projection[*produtodomain.Produto], error)
	Create(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error)
	Update(ctx context.Context, input pettypes.UpdatePetInput) (*projection.Projection[*domain.Pet], error)
	Delete(ctx context.Context, id int64) error
}
