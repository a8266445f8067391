package application

import (
	"errors"
	"fmt"

	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

var (
	// ErrUnauthorized marks every authentication failure that maps to 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRegistration wraps signup rejections that map to 400.
	ErrRegistration = errors.New("registration rejected")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrInvalidCredentials) ||
		errors.Is(err, ports.ErrInvalidToken) ||
		errors.Is(err, ports.ErrSessionNotFound) ||
		errors.Is(err, ports.ErrUnknownUsuario) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if errors.Is(err, ports.ErrEmailTaken) {
		return fmt.Errorf("%w: %w", ErrRegistration, err)
	}
	return err
}
