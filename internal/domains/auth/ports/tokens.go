package ports

import (
	"errors"
	"time"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
)

// ErrInvalidToken covers malformed, badly signed and expired tokens.
var ErrInvalidToken = errors.New("invalid token")

// IssuedToken is a signed access token and its session.
type IssuedToken struct {
	Token     string
	Session   domain.Session
	ExpiresIn time.Duration
}

// TokenIssuer signs access tokens for a usuario.
type TokenIssuer interface {
	Issue(usuarioID int64) (IssuedToken, error)
}

// TokenVerifier validates an access token and returns its identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}
