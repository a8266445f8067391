package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestIssueAndVerify(t *testing.T) {
	signer, err := NewJWT(secret, time.Hour)
	require.NoError(t, err)

	issued, err := signer.Issue(42)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, issued.ExpiresIn)
	assert.Equal(t, int64(42), issued.Session.UsuarioID)

	identity, err := signer.Verify(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UsuarioID)
	assert.Equal(t, issued.Session.TokenID, identity.TokenID)

	other, err := signer.Issue(42)
	require.NoError(t, err)
	assert.NotEqual(t, issued.Session.TokenID, other.Session.TokenID)
}

func TestVerifyRejects(t *testing.T) {
	signer, err := NewJWT(secret, time.Hour)
	require.NoError(t, err)
	issued, err := signer.Issue(1)
	require.NoError(t, err)

	_, err = signer.Verify(issued.Token + "x")
	assert.ErrorIs(t, err, ports.ErrInvalidToken)

	foreign, err := NewJWT(strings.Repeat("z", 32), time.Hour)
	require.NoError(t, err)
	_, err = foreign.Verify(issued.Token)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)

	signer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = signer.Verify(issued.Token)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "1", Issuer: DefaultIssuer})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = signer.Verify(unsigned)
	assert.ErrorIs(t, err, ports.ErrInvalidToken)
}

func TestNewJWTRequiresStrongSecret(t *testing.T) {
	_, err := NewJWT("short", time.Hour)
	assert.ErrorIs(t, err, ErrWeakSecret)
}
