package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
)

func newProduto(t *testing.T, nome string, petID int64) *domain.Produto {
	t.Helper()
	p, err := domain.NewProduto(nome, "alimenticio", decimal.NewFromInt(10))
	require.NoError(t, err)
	require.NoError(t, p.AssignPet(&petID))
	return p
}

func TestRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	racao, err := repo.Create(ctx, newProduto(t, "Ração", 1))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newProduto(t, "Coleira", 2))
	require.NoError(t, err)

	byPet, err := repo.ListByPet(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byPet, 1)
	assert.Equal(t, racao.Entity.ID, byPet[0].Entity.ID)

	count, err := repo.CountByPet(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	*byPet[0].Entity.PetID = 99
	again, err := repo.GetByID(ctx, racao.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *again.Entity.PetID)

	require.NoError(t, repo.Delete(ctx, racao.Entity.ID))
	_, err = repo.GetByID(ctx, racao.Entity.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, racao.Entity.ID), ports.ErrNotFound)
}

func TestRepositoryUpdateWritesListedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	created, err := repo.Create(ctx, newProduto(t, "Ração", 1))
	require.NoError(t, err)

	change := *created.Entity
	change.Nome = "Ração Premium"
	change.Preco = decimal.NewFromInt(99)
	updated, err := repo.Update(ctx, &change, []string{"nome"})
	require.NoError(t, err)
	assert.Equal(t, "Ração Premium", updated.Entity.Nome)
	assert.True(t, updated.Entity.Preco.Equal(decimal.NewFromInt(10)))

	_, err = repo.Update(ctx, &change, []string{"petid"})
	assert.ErrorIs(t, err, fieldmap.ErrUnknownField)

	change.ID = 404
	_, err = repo.Update(ctx, &change, []string{"nome"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
