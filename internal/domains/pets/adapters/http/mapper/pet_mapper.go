package mapper

import (
	"time"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// CreatePet is the inbound payload of POST /pets.
type CreatePet struct {
	Nome       *string `json:"nome" validate:"required,max=100"`
	Raca       *string `json:"raca" validate:"required,max=100"`
	Especie    *string `json:"especie,omitempty" validate:"omitempty,max=60"`
	Idade      *int32  `json:"idade,omitempty" validate:"omitempty,min=0,max=200"`
	Sexo       *string `json:"sexo,omitempty" validate:"omitempty,max=20"`
	CorPelagem *string `json:"corPelagem,omitempty" validate:"omitempty,max=60"`
	Castrado   *bool   `json:"castrado,omitempty"`
	FotoURL    *string `json:"foto_url,omitempty" validate:"omitempty,max=2048"`
	UsuarioID  *int64  `json:"usuarioId" validate:"required,gt=0"`
}

// UpdatePet is a partial update; absent fields stay nil.
type UpdatePet struct {
	Nome       *string `json:"nome,omitempty" validate:"omitempty,max=100"`
	Raca       *string `json:"raca,omitempty" validate:"omitempty,max=100"`
	Especie    *string `json:"especie,omitempty" validate:"omitempty,max=60"`
	Idade      *int32  `json:"idade,omitempty" validate:"omitempty,min=0,max=200"`
	Sexo       *string `json:"sexo,omitempty" validate:"omitempty,max=20"`
	CorPelagem *string `json:"corPelagem,omitempty" validate:"omitempty,max=60"`
	Castrado   *bool   `json:"castrado,omitempty"`
	FotoURL    *string `json:"foto_url,omitempty" validate:"omitempty,max=2048"`
	UsuarioID  *int64  `json:"usuarioId,omitempty" validate:"omitempty,gt=0"`
}

// Pet is the HTTP representation of a pet.
type Pet struct {
	ID         int64     `json:"id"`
	Nome       string    `json:"nome"`
	Raca       string    `json:"raca"`
	Especie    string    `json:"especie,omitempty"`
	Idade      int32     `json:"idade"`
	Sexo       string    `json:"sexo,omitempty"`
	CorPelagem string    `json:"corPelagem,omitempty"`
	Castrado   bool      `json:"castrado"`
	FotoURL    string    `json:"foto_url,omitempty"`
	UsuarioID  int64     `json:"usuarioId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToAddInput builds the create command; idempotencyKey comes from the request header.
func ToAddInput(in CreatePet, idempotencyKey string) pettypes.AddPetInput {
	return pettypes.AddPetInput{
		PetMutationInput: pettypes.PetMutationInput{
			Nome:       in.Nome,
			Raca:       in.Raca,
			Especie:    in.Especie,
			Idade:      in.Idade,
			Sexo:       in.Sexo,
			CorPelagem: in.CorPelagem,
			Castrado:   in.Castrado,
			FotoURL:    in.FotoURL,
			UsuarioID:  in.UsuarioID,
		},
		IdempotencyKey: idempotencyKey,
	}
}

func ToUpdateInput(id int64, in UpdatePet) pettypes.UpdatePetInput {
	return pettypes.UpdatePetInput{
		ID: id,
		PetMutationInput: pettypes.PetMutationInput{
			Nome:       in.Nome,
			Raca:       in.Raca,
			Especie:    in.Especie,
			Idade:      in.Idade,
			Sexo:       in.Sexo,
			CorPelagem: in.CorPelagem,
			Castrado:   in.Castrado,
			FotoURL:    in.FotoURL,
			UsuarioID:  in.UsuarioID,
		},
	}
}

// FromDomain converts a persisted pet into its transport representation.
func FromDomain(p *projection.Projection[*domain.Pet]) Pet {
	if p == nil || p.Entity == nil {
		return Pet{}
	}
	pet := p.Entity
	return Pet{
		ID:         pet.ID,
		Nome:       pet.Nome,
		Raca:       pet.Raca,
		Especie:    pet.Especie,
		Idade:      pet.Idade,
		Sexo:       pet.Sexo,
		CorPelagem: pet.CorPelagem,
		Castrado:   pet.Castrado,
		FotoURL:    pet.FotoURL,
		UsuarioID:  pet.UsuarioID,
		CreatedAt:  p.Metadata.CreatedAt,
		UpdatedAt:  p.Metadata.UpdatedAt,
	}
}

func FromDomainList(list []*projection.Projection[*domain.Pet]) []Pet {
	result := make([]Pet, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomain(p))
	}
	return result
}
