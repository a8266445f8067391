package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCoversEveryLookupName(t *testing.T) {
	for _, profile := range All() {
		found, err := Lookup(string(profile.Name))
		require.NoError(t, err)
		assert.Equal(t, profile, found)
	}
	assert.Len(t, All(), 2)
}

func TestLookup(t *testing.T) {
	p, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, ProfileMain, p.Name)

	p, err = Lookup(" Coursework ")
	require.NoError(t, err)
	assert.Equal(t, ProfileCoursework, p.Name)
	assert.False(t, p.AuthEnabled)

	_, err = Lookup("legacy")
	require.ErrorIs(t, err, ErrUnknownProfile)
}

func TestCheckPetText(t *testing.T) {
	assert.NoError(t, Main().CheckPetText("123"))
	assert.NoError(t, Coursework().CheckPetText("Vira Lata Caramelo"))
	assert.NoError(t, Coursework().CheckPetText("Pêssego"))
	assert.ErrorIs(t, Coursework().CheckPetText("123"), ErrLettersOnly)
	assert.ErrorIs(t, Coursework().CheckPetText(""), ErrLettersOnly)
}

func TestCheckProdutoTipo(t *testing.T) {
	assert.NoError(t, Main().CheckProdutoTipo("higiene"))
	assert.ErrorIs(t, Main().CheckProdutoTipo("Alimento"), ErrInvalidTipo)
	assert.NoError(t, Coursework().CheckProdutoTipo("Alimento"))
}

func TestRequiresMedicinalDetails(t *testing.T) {
	assert.True(t, Main().RequiresMedicinalDetails("medicinal"))
	assert.False(t, Main().RequiresMedicinalDetails("higiene"))
	assert.False(t, Coursework().RequiresMedicinalDetails("medicinal"))
}
