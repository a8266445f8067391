package domain

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmptyNome    = errors.New("nome é obrigatório")
	ErrEmptyEmail   = errors.New("email é obrigatório")
	ErrInvalidEmail = errors.New("email inválido")
	ErrEmptySenha   = errors.New("senha é obrigatória")
	ErrWeakSenha    = errors.New("senha deve ter pelo menos 6 caracteres")
)

// MinSenhaLength is the shortest accepted plain-text password.
const MinSenhaLength = 6

// Usuario is the account that owns pets. SenhaHash never leaves the service boundary.
type Usuario struct {
	ID        int64
	Nome      string
	Email     string
	SenhaHash string
}

// NewUsuario builds a usuario ensuring required invariants. The hash is set separately.
func NewUsuario(nome, email string) (*Usuario, error) {
	u := &Usuario{}
	if err := u.Rename(nome); err != nil {
		return nil, err
	}
	if err := u.ChangeEmail(email); err != nil {
		return nil, err
	}
	return u, nil
}

// Rename trims and validates the display name.
func (u *Usuario) Rename(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return ErrEmptyNome
	}
	u.Nome = nome
	return nil
}

// ChangeEmail trims and validates the login email. Case is kept as sent.
func (u *Usuario) ChangeEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ErrEmptyEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return ErrInvalidEmail
	}
	u.Email = trimmed
	return nil
}

// SameEmail reports whether two addresses collide under the uniqueness rule.
func SameEmail(a, b string) bool {
	return NormalizeEmail(a) == NormalizeEmail(b)
}

// NormalizeEmail is the lookup key for uniqueness checks and login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateSenha checks a plain-text password before hashing.
func ValidateSenha(senha string) error {
	if strings.TrimSpace(senha) == "" {
		return ErrEmptySenha
	}
	if len(senha) < MinSenhaLength {
		return ErrWeakSenha
	}
	return nil
}

// Validate re-applies core invariants for persistence.
func (u *Usuario) Validate() error {
	if err := u.Rename(u.Nome); err != nil {
		return err
	}
	return u.ChangeEmail(u.Email)
}
