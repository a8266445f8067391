//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/platform/postgres/postgrestest"
)

func newUsuario(t *testing.T, nome, email string) *domain.Usuario {
	t.Helper()
	u, err := domain.NewUsuario(nome, email)
	require.NoError(t, err)
	u.SenhaHash = "$2a$04$placeholder"
	return u
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newUsuario(t, "Ana", "ana@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, created.Entity.ID)
	assert.False(t, created.Metadata.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, " ANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.Entity.ID, byEmail.Entity.ID)

	byNome, err := repo.GetByNome(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, created.Entity.ID, byNome.Entity.ID)

	exists, err := repo.Exists(ctx, created.Entity.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_DuplicateEmail(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, newUsuario(t, "Ana", "ana@example.com"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newUsuario(t, "Outra Ana", "Ana@Example.com"))
	assert.ErrorIs(t, err, ports.ErrDuplicateEmail)
}

func TestRepository_PartialUpdate(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newUsuario(t, "Ana", "ana@example.com"))
	require.NoError(t, err)

	change := *created.Entity
	change.Nome = "Ana Maria"
	change.Email = "nao-gravado@example.com"
	updated, err := repo.Update(ctx, &change, []string{"nome"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Entity.Nome)
	assert.Equal(t, "ana@example.com", updated.Entity.Email)

	change.ID = 9999
	_, err = repo.Update(ctx, &change, []string{"nome"})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_ListAndDelete(t *testing.T) {
	repo := NewRepository(postgrestest.Start(t))
	ctx := context.Background()

	var ids []int64
	for i := 1; i <= 3; i++ {
		created, err := repo.Create(ctx, newUsuario(t, fmt.Sprintf("Usuario %d", i), fmt.Sprintf("u%d@example.com", i)))
		require.NoError(t, err)
		ids = append(ids, created.Entity.ID)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, ids[i], p.Entity.ID)
	}

	require.NoError(t, repo.Delete(ctx, ids[1]))
	_, err = repo.GetByID(ctx, ids[1])
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ids[1]), ports.ErrNotFound)
}
