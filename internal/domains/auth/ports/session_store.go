package ports

import (
	"context"
	"errors"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
)

// ErrSessionNotFound is returned for unknown, revoked or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists issued sessions keyed by token id.
type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, tokenID string) (*domain.Session, error)
	Delete(ctx context.Context, tokenID string) error
	DeleteByUsuario(ctx context.Context, usuarioID int64) error
}
