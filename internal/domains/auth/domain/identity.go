// Package domain holds the authentication value types.
package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingTokenID = errors.New("token id is required")
	ErrMissingUsuario = errors.New("usuario id is required")
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UsuarioID int64
	TokenID   string
	ExpiresAt time.Time
}

// Session records an issued token so it can be revoked before it expires.
type Session struct {
	TokenID   string
	UsuarioID int64
	ExpiresAt time.Time
}

// NewSession validates and builds a session.
func NewSession(tokenID string, usuarioID int64, expiresAt time.Time) (Session, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return Session{}, ErrMissingTokenID
	}
	if usuarioID <= 0 {
		return Session{}, ErrMissingUsuario
	}
	return Session{TokenID: tokenID, UsuarioID: usuarioID, ExpiresAt: expiresAt.UTC()}, nil
}

// Expired reports whether the session is past its expiry at now. A zero expiry never expires.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
