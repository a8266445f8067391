package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyNome      = errors.New("nome é obrigatório")
	ErrEmptyRaca      = errors.New("raça é obrigatória")
	ErrInvalidIdade   = errors.New("idade deve ser maior ou igual a zero")
	ErrMissingUsuario = errors.New("usuarioId é obrigatório")
)

// Pet is owned by exactly one usuario and may own produtos.
type Pet struct {
	ID         int64
	Nome       string
	Raca       string
	Especie    string
	Idade      int32
	Sexo       string
	CorPelagem string
	Castrado   bool
	FotoURL    string
	UsuarioID  int64
}

// NewPet builds a pet ensuring required invariants.
func NewPet(nome, raca string, usuarioID int64) (*Pet, error) {
	pet := &Pet{}
	if err := pet.Rename(nome); err != nil {
		return nil, err
	}
	if err := pet.ChangeRaca(raca); err != nil {
		return nil, err
	}
	if err := pet.AssignOwner(usuarioID); err != nil {
		return nil, err
	}
	return pet, nil
}

// Rename trims and validates the pet name.
func (p *Pet) Rename(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return ErrEmptyNome
	}
	p.Nome = nome
	return nil
}

func (p *Pet) ChangeRaca(raca string) error {
	raca = strings.TrimSpace(raca)
	if raca == "" {
		return ErrEmptyRaca
	}
	p.Raca = raca
	return nil
}

func (p *Pet) SetIdade(idade int32) error {
	if idade < 0 {
		return ErrInvalidIdade
	}
	p.Idade = idade
	return nil
}

// AssignOwner moves the pet to another usuario. Existence is checked by the application layer.
func (p *Pet) AssignOwner(usuarioID int64) error {
	if usuarioID <= 0 {
		return ErrMissingUsuario
	}
	p.UsuarioID = usuarioID
	return nil
}

// UpdateDetails replaces the optional descriptive fields.
func (p *Pet) UpdateDetails(especie, sexo, corPelagem, fotoURL string) {
	p.Especie = strings.TrimSpace(especie)
	p.Sexo = strings.TrimSpace(sexo)
	p.CorPelagem = strings.TrimSpace(corPelagem)
	p.FotoURL = strings.TrimSpace(fotoURL)
}

// Validate re-applies core invariants for persistence.
func (p *Pet) Validate() error {
	if err := p.Rename(p.Nome); err != nil {
		return err
	}
	if err := p.ChangeRaca(p.Raca); err != nil {
		return err
	}
	if err := p.SetIdade(p.Idade); err != nil {
		return err
	}
	return p.AssignOwner(p.UsuarioID)
}
