package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet(t *testing.T) {
	pet, err := NewPet(" Rex ", "Labrador", 1)
	require.NoError(t, err)
	assert.Equal(t, "Rex", pet.Nome)
	assert.Equal(t, int64(1), pet.UsuarioID)

	_, err = NewPet("", "Labrador", 1)
	assert.ErrorIs(t, err, ErrEmptyNome)
	_, err = NewPet("Rex", " ", 1)
	assert.ErrorIs(t, err, ErrEmptyRaca)
	_, err = NewPet("Rex", "Labrador", 0)
	assert.ErrorIs(t, err, ErrMissingUsuario)
}

func TestSetIdade(t *testing.T) {
	pet := &Pet{}
	assert.NoError(t, pet.SetIdade(0))
	assert.ErrorIs(t, pet.SetIdade(-1), ErrInvalidIdade)
}

func TestValidate(t *testing.T) {
	pet := &Pet{Nome: "Rex", Raca: "SRD", UsuarioID: 2, Idade: -3}
	assert.ErrorIs(t, pet.Validate(), ErrInvalidIdade)
	pet.Idade = 3
	assert.NoError(t, pet.Validate())
}
