package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	petsmemory "github.com/petcare/petcare-api/internal/domains/pets/adapters/memory"
	petsapp "github.com/petcare/petcare-api/internal/domains/pets/application"
	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	petactivities "github.com/petcare/petcare-api/internal/platform/temporal/activities/pets"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

type allOwners struct{}

func (allOwners) Exists(context.Context, int64) (bool, error) { return true, nil }

func TestInlinePetWorkflowsDelegates(t *testing.T) {
	service := petsapp.NewService(petsmemory.NewRepository(), allOwners{})
	nome, raca, owner := "Rex", "SRD", int64(1)

	created, err := NewInlinePetWorkflows(service).CreatePet(context.Background(), pettypes.AddPetInput{
		PetMutationInput: pettypes.PetMutationInput{Nome: &nome, Raca: &raca, UsuarioID: &owner},
	})
	require.NoError(t, err)
	assert.Equal(t, "Rex", created.Entity.Nome)

	var nilInline *InlinePetWorkflows
	_, err = nilInline.CreatePet(context.Background(), pettypes.AddPetInput{})
	require.Error(t, err)
}

func TestBuildPetCreationWorkflowID(t *testing.T) {
	a := buildPetCreationWorkflowID(rules.ProfileMain, pettypes.AddPetInput{IdempotencyKey: " key "}, "trace")
	b := buildPetCreationWorkflowID(rules.ProfileMain, pettypes.AddPetInput{IdempotencyKey: "key"}, "other")
	assert.Equal(t, a, b)
	assert.Contains(t, a, "pet-creation-main-idem-")

	course := buildPetCreationWorkflowID(rules.ProfileCoursework, pettypes.AddPetInput{IdempotencyKey: "key"}, "trace")
	assert.NotEqual(t, a, course, "profiles never share an idempotent workflow")

	c := buildPetCreationWorkflowID(rules.ProfileCoursework, pettypes.AddPetInput{}, "trace")
	assert.Contains(t, c, "coursework")
	assert.Contains(t, c, "trace")
}

func TestTranslateWorkflowError(t *testing.T) {
	owner := temporal.NewNonRetryableApplicationError("x", petactivities.ErrTypeOwnerMissing, nil)
	err := translateWorkflowError(owner)
	assert.ErrorIs(t, err, petsapp.ErrReference)
	assert.ErrorIs(t, err, ports.ErrOwnerMissing)

	conflict := temporal.NewNonRetryableApplicationError("x", petactivities.ErrTypeConflict, nil)
	assert.ErrorIs(t, translateWorkflowError(conflict), petsapp.ErrConflict)

	invalid := temporal.NewNonRetryableApplicationError("invalid pet input: nome é obrigatório", petactivities.ErrTypeInvalidInput, nil)
	err = translateWorkflowError(invalid)
	assert.ErrorIs(t, err, petsapp.ErrInvalidInput)
	assert.Contains(t, err.Error(), "nome é obrigatório")

	plain := errors.New("boom")
	assert.Equal(t, plain, translateWorkflowError(plain))
}
