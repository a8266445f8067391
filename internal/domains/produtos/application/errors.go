package application

import (
	"errors"
	"fmt"

	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant or profile rule.
	ErrInvalidInput = errors.New("invalid produto input")
	// ErrReference signals the produto points at a pet that does not exist.
	ErrReference = errors.New("invalid produto reference")
)

var invalidInput = []error{
	domain.ErrEmptyNome,
	domain.ErrEmptyTipo,
	domain.ErrNegativePreco,
	domain.ErrMissingPreco,
	domain.ErrInvalidPet,
	domain.ErrInvalidDataCompra,
	domain.ErrInvalidQuantidade,
	domain.ErrMissingPet,
	domain.ErrMissingDataCompra,
	rules.ErrInvalidTipo,
	rules.ErrMedicinalFields,
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range invalidInput {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	if errors.Is(err, ports.ErrPetMissing) {
		return fmt.Errorf("%w: %w", ErrReference, err)
	}
	return err
}
