package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", hash)

	again, err := h.Hash("senha123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")

	require.NoError(t, h.Compare(hash, "senha123"))
	require.ErrorIs(t, h.Compare(hash, "errada"), ports.ErrSenhaMismatch)
	require.Error(t, h.Compare("not-a-hash", "senha123"))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
