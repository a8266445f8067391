package ports

import (
	"context"

	produtodomain "github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// OwnerDirectory answers whether a usuario exists. The usuarios repository satisfies it.
type OwnerDirectory interface {
	Exists(ctx context.Context, usuarioID int64) (bool, error)
}

// ProdutoDirectory exposes the produtos of a pet. The produtos repository satisfies it.
type ProdutoDirectory interface {
	ListByPet(ctx context.Context, petID int64) ([]*projection.Projection[*produtodomain.Produto], error)
	CountByPet(ctx context.Context, petID int64) (int64, error)
}
