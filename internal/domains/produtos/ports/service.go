package ports

import (
	"context"

	"github.com/shopspring/decimal"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// MutationInput carries the fields of a create or partial update. Nil means absent.
type MutationInput struct {
	Nome            *string
	Descricao       *string
	Tipo            *string
	Preco           *decimal.Decimal
	Imagem          *string
	PetID           *int64
	DataCompra      *string
	Observacoes     *string
	QuantidadeVezes *int32
	QuandoConsumir  *string

	// ClearPet unlinks the pet on update; PetID is nil then.
	ClearPet bool
}

// Service defines the produtos use cases exposed to adapters.
type Service interface {
	List(ctx context.Context) ([]*projection.Projection[*domain.Produto], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Produto], error)
	ListByPet(ctx context.Context, petID int64) ([]*projection.Projection[*domain.Produto], error)
	GetPet(ctx context.Context, id int64) (*projection.Projection[*petdomain.Pet], error)
	Create(ctx context.Context, input MutationInput) (*projection.Projection[*domain.Produto], error)
	Update(ctx context.Context, id int64, input MutationInput) (*projection.Projection[*domain.Produto], error)
	Delete(ctx context.Context, id int64) error
}
