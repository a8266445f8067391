package application

import (
	"errors"
	"fmt"

	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid pet input")
	// ErrReference signals the pet points at a usuario that does not exist.
	ErrReference = errors.New("invalid pet reference")
	// ErrConflict wraps idempotency and dependent-row violations.
	ErrConflict = errors.New("pet conflict")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyNome) ||
		errors.Is(err, domain.ErrEmptyRaca) ||
		errors.Is(err, domain.ErrInvalidIdade) ||
		errors.Is(err, domain.ErrMissingUsuario) ||
		errors.Is(err, rules.ErrLettersOnly) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrOwnerMissing) {
		return fmt.Errorf("%w: %w", ErrReference, err)
	}
	if errors.Is(err, ports.ErrReferenced) || errors.Is(err, ports.ErrIdempotencyConflict) {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}
	return err
}
