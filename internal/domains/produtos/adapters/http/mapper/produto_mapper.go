package mapper

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// CreateProduto is the inbound payload of POST /produtos. Profile rules run in the service.
type CreateProduto struct {
	Nome            *string          `json:"nome" validate:"required,max=150"`
	Descricao       *string          `json:"descricao,omitempty" validate:"omitempty,max=1000"`
	Tipo            *string          `json:"tipo" validate:"required,max=64"`
	Preco           *decimal.Decimal `json:"preco" validate:"required"`
	Imagem          *string          `json:"imagem,omitempty" validate:"omitempty,max=2048"`
	PetID           *int64           `json:"petId,omitempty" validate:"omitempty,gt=0"`
	DataCompra      *string          `json:"data_compra,omitempty"`
	Observacoes     *string          `json:"observacoes,omitempty" validate:"omitempty,max=1000"`
	QuantidadeVezes *int32           `json:"quantidade_vezes,omitempty" validate:"omitempty,gt=0"`
	QuandoConsumir  *string          `json:"quando_consumir,omitempty" validate:"omitempty,max=255"`
}

// UpdateProduto backs PATCH and PUT; absent fields stay nil. petId also accepts null,
// which unlinks the pet where the profile allows a produto without one.
type UpdateProduto struct {
	Nome            *string          `json:"nome,omitempty" validate:"omitempty,max=150"`
	Descricao       *string          `json:"descricao,omitempty" validate:"omitempty,max=1000"`
	Tipo            *string          `json:"tipo,omitempty" validate:"omitempty,max=64"`
	Preco           *decimal.Decimal `json:"preco,omitempty"`
	Imagem          *string          `json:"imagem,omitempty" validate:"omitempty,max=2048"`
	PetID           PetRef           `json:"petId" validate:"omitempty,gt=0" swaggertype:"integer"`
	DataCompra      *string          `json:"data_compra,omitempty"`
	Observacoes     *string          `json:"observacoes,omitempty" validate:"omitempty,max=1000"`
	QuantidadeVezes *int32           `json:"quantidade_vezes,omitempty" validate:"omitempty,gt=0"`
	QuandoConsumir  *string          `json:"quando_consumir,omitempty" validate:"omitempty,max=255"`
}

// PetRef tells an absent petId apart from an explicit null.
type PetRef struct {
	Present bool
	ID      *int64
}

func (r *PetRef) UnmarshalJSON(data []byte) error {
	r.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		r.ID = nil
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// Produto is the HTTP representation of a produto. The pet reference is always petId
// and preco is a JSON number, which clients format with toFixed.
type Produto struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	Descricao       string    `json:"descricao,omitempty"`
	Tipo            string    `json:"tipo"`
	Preco           float64   `json:"preco"`
	Imagem          string    `json:"imagem,omitempty"`
	PetID           *int64    `json:"petId"`
	DataCompra      *string   `json:"data_compra"`
	Observacoes     string    `json:"observacoes,omitempty"`
	QuantidadeVezes *int32    `json:"quantidade_vezes,omitempty"`
	QuandoConsumir  string    `json:"quando_consumir,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func ToCreateInput(in CreateProduto) ports.MutationInput {
	return ports.MutationInput{
		Nome:            in.Nome,
		Descricao:       in.Descricao,
		Tipo:            in.Tipo,
		Preco:           in.Preco,
		Imagem:          in.Imagem,
		PetID:           in.PetID,
		DataCompra:      in.DataCompra,
		Observacoes:     in.Observacoes,
		QuantidadeVezes: in.QuantidadeVezes,
		QuandoConsumir:  in.QuandoConsumir,
	}
}

func ToUpdateInput(in UpdateProduto) ports.MutationInput {
	return ports.MutationInput{
		Nome:            in.Nome,
		Descricao:       in.Descricao,
		Tipo:            in.Tipo,
		Preco:           in.Preco,
		Imagem:          in.Imagem,
		PetID:           in.PetID.ID,
		ClearPet:        in.PetID.Present && in.PetID.ID == nil,
		DataCompra:      in.DataCompra,
		Observacoes:     in.Observacoes,
		QuantidadeVezes: in.QuantidadeVezes,
		QuandoConsumir:  in.QuandoConsumir,
	}
}

// FromDomain converts a persisted produto into its transport representation.
func FromDomain(p *projection.Projection[*domain.Produto]) Produto {
	if p == nil || p.Entity == nil {
		return Produto{}
	}
	produto := p.Entity
	out := Produto{
		ID:              produto.ID,
		Nome:            produto.Nome,
		Descricao:       produto.Descricao,
		Tipo:            produto.Tipo,
		Preco:           produto.Preco.InexactFloat64(),
		Imagem:          produto.Imagem,
		PetID:           produto.PetID,
		Observacoes:     produto.Observacoes,
		QuantidadeVezes: produto.QuantidadeVezes,
		QuandoConsumir:  produto.QuandoConsumir,
		CreatedAt:       p.Metadata.CreatedAt,
		UpdatedAt:       p.Metadata.UpdatedAt,
	}
	if produto.DataCompra != nil {
		formatted := produto.DataCompra.Format(domain.DateLayout)
		out.DataCompra = &formatted
	}
	return out
}

func FromDomainList(list []*projection.Projection[*domain.Produto]) []Produto {
	result := make([]Produto, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomain(p))
	}
	return result
}
