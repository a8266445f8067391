// Package token issues and verifies HS256 access tokens.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

// DefaultIssuer is the iss claim of every token.
const DefaultIssuer = "petcare-api"

// MinSecretLength is the shortest HMAC secret accepted.
const MinSecretLength = 32

var ErrWeakSecret = fmt.Errorf("jwt secret must have at least %d bytes", MinSecretLength)

// JWT signs and verifies tokens with a shared secret.
type JWT struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewJWT(secret string, ttl time.Duration) (*JWT, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &JWT{secret: []byte(secret), ttl: ttl, issuer: DefaultIssuer, now: time.Now}, nil
}

// Issue signs a token whose subject is the usuario id and whose jti is a fresh uuid.
func (j *JWT) Issue(usuarioID int64) (ports.IssuedToken, error) {
	now := j.now().UTC()
	session, err := domain.NewSession(uuid.NewString(), usuarioID, now.Add(j.ttl))
	if err != nil {
		return ports.IssuedToken{}, err
	}
	claims := jwt.RegisteredClaims{
		ID:        session.TokenID,
		Subject:   strconv.FormatInt(usuarioID, 10),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return ports.IssuedToken{}, err
	}
	return ports.IssuedToken{Token: signed, Session: session, ExpiresIn: j.ttl}, nil
}

// Verify parses the token and returns its identity. Any failure wraps ports.ErrInvalidToken.
func (j *JWT) Verify(raw string) (domain.Identity, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return domain.Identity{}, ports.ErrInvalidToken
	}
	usuarioID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || usuarioID <= 0 {
		return domain.Identity{}, fmt.Errorf("%w: bad subject", ports.ErrInvalidToken)
	}
	if claims.ID == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing jti", ports.ErrInvalidToken)
	}
	return domain.Identity{UsuarioID: usuarioID, TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

var (
	_ ports.TokenIssuer   = (*JWT)(nil)
	_ ports.TokenVerifier = (*JWT)(nil)
)
