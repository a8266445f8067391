package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
)

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher hashes passwords with a per-hash salt. Compare runs in constant time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher clamps cost into the range accepted by bcrypt.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, senha string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ports.ErrSenhaMismatch
	}
	return err
}
