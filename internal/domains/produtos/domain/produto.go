package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyNome         = errors.New("nome é obrigatório")
	ErrEmptyTipo         = errors.New("tipo é obrigatório")
	ErrNegativePreco     = errors.New("preço deve ser maior ou igual a zero")
	ErrInvalidPet        = errors.New("petId deve ser um número positivo")
	ErrInvalidDataCompra = errors.New("data_compra deve estar no formato AAAA-MM-DD")
	ErrInvalidQuantidade = errors.New("quantidade_vezes deve ser maior que zero")
	ErrMissingPet        = errors.New("petId é obrigatório")
	ErrMissingDataCompra = errors.New("data_compra é obrigatória")
	ErrMissingPreco      = errors.New("preço é obrigatório")
)

// DateLayout is the calendar form accepted and rendered for data_compra.
const DateLayout = "2006-01-02"

// Produto is a purchase or medication, optionally tied to a pet.
type Produto struct {
	ID              int64
	Nome            string
	Descricao       string
	Tipo            string
	Preco           decimal.Decimal
	Imagem          string
	PetID           *int64
	DataCompra      *time.Time
	Observacoes     string
	QuantidadeVezes *int32
	QuandoConsumir  string
}

// NewProduto builds a produto with its required fields.
func NewProduto(nome, tipo string, preco decimal.Decimal) (*Produto, error) {
	p := &Produto{}
	if err := p.Rename(nome); err != nil {
		return nil, err
	}
	if err := p.ChangeTipo(tipo); err != nil {
		return nil, err
	}
	if err := p.SetPreco(preco); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Produto) Rename(nome string) error {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return ErrEmptyNome
	}
	p.Nome = nome
	return nil
}

// ChangeTipo stores the kind as given; enum membership is a profile rule.
func (p *Produto) ChangeTipo(tipo string) error {
	tipo = strings.TrimSpace(tipo)
	if tipo == "" {
		return ErrEmptyTipo
	}
	p.Tipo = tipo
	return nil
}

func (p *Produto) SetPreco(preco decimal.Decimal) error {
	if preco.IsNegative() {
		return ErrNegativePreco
	}
	p.Preco = preco.Round(2)
	return nil
}

// AssignPet links the produto to a pet. Nil unlinks it.
func (p *Produto) AssignPet(petID *int64) error {
	if petID == nil {
		p.PetID = nil
		return nil
	}
	if *petID <= 0 {
		return ErrInvalidPet
	}
	id := *petID
	p.PetID = &id
	return nil
}

// SetDataCompra parses value as YYYY-MM-DD or RFC 3339. An empty value clears the date.
func (p *Produto) SetDataCompra(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		p.DataCompra = nil
		return nil
	}
	parsed, err := ParseDataCompra(value)
	if err != nil {
		return err
	}
	p.DataCompra = &parsed
	return nil
}

func (p *Produto) SetQuantidadeVezes(vezes *int32) error {
	if vezes == nil {
		p.QuantidadeVezes = nil
		return nil
	}
	if *vezes <= 0 {
		return ErrInvalidQuantidade
	}
	v := *vezes
	p.QuantidadeVezes = &v
	return nil
}

// UpdateDetails replaces the optional free text fields.
func (p *Produto) UpdateDetails(descricao, imagem, observacoes, quandoConsumir string) {
	p.Descricao = strings.TrimSpace(descricao)
	p.Imagem = strings.TrimSpace(imagem)
	p.Observacoes = strings.TrimSpace(observacoes)
	p.QuandoConsumir = strings.TrimSpace(quandoConsumir)
}

// Validate re-applies core invariants for persistence.
func (p *Produto) Validate() error {
	if err := p.Rename(p.Nome); err != nil {
		return err
	}
	if err := p.ChangeTipo(p.Tipo); err != nil {
		return err
	}
	if err := p.SetPreco(p.Preco); err != nil {
		return err
	}
	if err := p.AssignPet(p.PetID); err != nil {
		return err
	}
	return p.SetQuantidadeVezes(p.QuantidadeVezes)
}

// ParseDataCompra accepts a calendar date or an RFC 3339 timestamp and returns it in UTC.
func ParseDataCompra(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDataCompra
}
