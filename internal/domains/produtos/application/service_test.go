package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	petmemory "github.com/petcare/petcare-api/internal/domains/pets/adapters/memory"
	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/adapters/memory"
	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T, profile rules.Profile) (*Service, int64) {
	t.Helper()
	pets := petmemory.NewRepository()
	pet, err := pets.Create(context.Background(), &petdomain.Pet{Nome: "Rex", Raca: "SRD", UsuarioID: 1})
	require.NoError(t, err)
	return NewService(memory.NewRepository(), pets, WithProfile(profile)), pet.Entity.ID
}

func racao(petID int64) ports.MutationInput {
	return ports.MutationInput{
		Nome:       ptr("Ração"),
		Tipo:       ptr("alimenticio"),
		Preco:      ptr(decimal.RequireFromString("89.90")),
		PetID:      ptr(petID),
		DataCompra: ptr("2024-02-01"),
	}
}

func TestCreateProduto(t *testing.T) {
	svc, petID := setup(t, rules.Main())

	created, err := svc.Create(context.Background(), racao(petID))
	require.NoError(t, err)
	assert.Equal(t, "Ração", created.Entity.Nome)
	require.NotNil(t, created.Entity.DataCompra)
	assert.Equal(t, petID, *created.Entity.PetID)
}

func TestCreateProdutoRejectsInvalidPayload(t *testing.T) {
	svc, _ := setup(t, rules.Main())

	_, err := svc.Create(context.Background(), ports.MutationInput{
		Nome:  ptr(""),
		Tipo:  ptr(""),
		Preco: ptr(decimal.NewFromInt(-10)),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyNome)
}

func TestCreateProdutoMainProfileRules(t *testing.T) {
	svc, petID := setup(t, rules.Main())
	ctx := context.Background()

	negative := racao(petID)
	negative.Preco = ptr(decimal.NewFromInt(-1))
	_, err := svc.Create(ctx, negative)
	require.ErrorIs(t, err, domain.ErrNegativePreco)

	unknownTipo := racao(petID)
	unknownTipo.Tipo = ptr("eletronico")
	_, err = svc.Create(ctx, unknownTipo)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, rules.ErrInvalidTipo)

	noPet := racao(petID)
	noPet.PetID = nil
	_, err = svc.Create(ctx, noPet)
	require.ErrorIs(t, err, domain.ErrMissingPet)

	noDate := racao(petID)
	noDate.DataCompra = nil
	_, err = svc.Create(ctx, noDate)
	require.ErrorIs(t, err, domain.ErrMissingDataCompra)

	badDate := racao(petID)
	badDate.DataCompra = ptr("01/02/2024")
	_, err = svc.Create(ctx, badDate)
	require.ErrorIs(t, err, domain.ErrInvalidDataCompra)

	medicinal := racao(petID)
	medicinal.Tipo = ptr(rules.TipoMedicinal)
	_, err = svc.Create(ctx, medicinal)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, rules.ErrMedicinalFields)

	medicinal.QuantidadeVezes = ptr(int32(2))
	medicinal.QuandoConsumir = ptr("após o almoço")
	_, err = svc.Create(ctx, medicinal)
	require.NoError(t, err)

	missingPet := racao(petID + 100)
	_, err = svc.Create(ctx, missingPet)
	require.ErrorIs(t, err, ErrReference)
	require.ErrorIs(t, err, ports.ErrPetMissing)
}

func TestCreateProdutoCourseworkProfile(t *testing.T) {
	svc, _ := setup(t, rules.Coursework())

	created, err := svc.Create(context.Background(), ports.MutationInput{
		Nome:  ptr("Antipulgas"),
		Tipo:  ptr(rules.TipoMedicinal),
		Preco: ptr(decimal.NewFromInt(35)),
	})
	require.NoError(t, err)
	assert.Nil(t, created.Entity.PetID)

	_, err = svc.GetPet(context.Background(), created.Entity.ID)
	require.ErrorIs(t, err, ports.ErrNoPet)
}

func TestUpdateProdutoIsPartial(t *testing.T) {
	svc, petID := setup(t, rules.Main())
	ctx := context.Background()
	created, err := svc.Create(ctx, racao(petID))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.Entity.ID, ports.MutationInput{Preco: ptr(decimal.NewFromInt(100))})
	require.NoError(t, err)
	assert.Equal(t, "Ração", updated.Entity.Nome)
	assert.True(t, updated.Entity.Preco.Equal(decimal.NewFromInt(100)))

	_, err = svc.Update(ctx, created.Entity.ID, ports.MutationInput{Tipo: ptr(rules.TipoMedicinal)})
	require.ErrorIs(t, err, rules.ErrMedicinalFields)

	_, err = svc.Update(ctx, created.Entity.ID, ports.MutationInput{PetID: ptr(petID + 100)})
	require.ErrorIs(t, err, ErrReference)

	_, err = svc.Update(ctx, 404, ports.MutationInput{Nome: ptr("x")})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateProdutoClearPet(t *testing.T) {
	ctx := context.Background()
	course, petID := setup(t, rules.Coursework())
	created, err := course.Create(ctx, racao(petID))
	require.NoError(t, err)

	cleared, err := course.Update(ctx, created.Entity.ID, ports.MutationInput{ClearPet: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.Entity.PetID)

	mainSvc, mainPet := setup(t, rules.Main())
	linked, err := mainSvc.Create(ctx, racao(mainPet))
	require.NoError(t, err)
	_, err = mainSvc.Update(ctx, linked.Entity.ID, ports.MutationInput{ClearPet: true})
	require.ErrorIs(t, err, domain.ErrMissingPet)
}

func TestProdutoPetAndDelete(t *testing.T) {
	svc, petID := setup(t, rules.Main())
	ctx := context.Background()
	created, err := svc.Create(ctx, racao(petID))
	require.NoError(t, err)

	pet, err := svc.GetPet(ctx, created.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", pet.Entity.Nome)

	list, err := svc.ListByPet(ctx, petID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	_, err = svc.ListByPet(ctx, petID+100)
	require.ErrorIs(t, err, ports.ErrPetMissing)

	require.NoError(t, svc.Delete(ctx, created.Entity.ID))
	require.ErrorIs(t, svc.Delete(ctx, created.Entity.ID), ports.ErrNotFound)
	_, err = svc.GetPet(ctx, created.Entity.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
