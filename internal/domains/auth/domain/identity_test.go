package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	s, err := NewSession(" jti ", 7, expires)
	require.NoError(t, err)
	assert.Equal(t, "jti", s.TokenID)
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(expires))

	_, err = NewSession("", 7, expires)
	assert.ErrorIs(t, err, ErrMissingTokenID)
	_, err = NewSession("jti", 0, expires)
	assert.ErrorIs(t, err, ErrMissingUsuario)

	assert.False(t, Session{TokenID: "x", UsuarioID: 1}.Expired(time.Now()))
}
