package application

import (
	"errors"
	"fmt"

	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid usuario input")
	// ErrConflict wraps uniqueness and reference violations.
	ErrConflict = errors.New("usuario conflict")
	// ErrInvalidCredentials is returned by Authenticate for any credential mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyNome) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptySenha) ||
		errors.Is(err, domain.ErrWeakSenha) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrDuplicateEmail) ||
		errors.Is(err, ports.ErrDuplicateNome) ||
		errors.Is(err, ports.ErrReferenced) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
