package ports

import (
	"context"
	"errors"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// ErrSenhaMismatch is returned by PasswordHasher.Compare for a wrong password.
var ErrSenhaMismatch = errors.New("senha does not match")

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(senha string) (string, error)
	Compare(hash, senha string) error
}

// PetDirectory exposes the pets owned by a usuario. The pets repository satisfies it.
type PetDirectory interface {
	ListByUsuario(ctx context.Context, usuarioID int64) ([]*projection.Projection[*petdomain.Pet], error)
	CountByUsuario(ctx context.Context, usuarioID int64) (int64, error)
}

// SessionRevoker drops every session of a usuario. Auth session stores satisfy it.
type SessionRevoker interface {
	DeleteByUsuario(ctx context.Context, usuarioID int64) error
}

// NoopSessionRevoker is the default when no session store is wired.
var NoopSessionRevoker SessionRevoker = noopSessionRevoker{}

type noopSessionRevoker struct{}

func (noopSessionRevoker) DeleteByUsuario(context.Context, int64) error { return nil }
