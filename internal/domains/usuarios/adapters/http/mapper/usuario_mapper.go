package mapper

import (
	"time"

	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// CreateUsuario is the inbound payload of POST /usuarios.
type CreateUsuario struct {
	Nome  string `json:"nome" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email,max=254"`
	Senha string `json:"senha" validate:"required,min=6,max=72"`
}

// UpdateUsuario is a partial update; absent fields stay nil.
type UpdateUsuario struct {
	Nome  *string `json:"nome,omitempty" validate:"omitempty,max=120"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Senha *string `json:"senha,omitempty" validate:"omitempty,min=6,max=72"`
}

// Usuario is the HTTP representation of a usuario. The password hash is never rendered.
type Usuario struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToCreateInput(in CreateUsuario) ports.CreateInput {
	return ports.CreateInput{Nome: in.Nome, Email: in.Email, Senha: in.Senha}
}

func ToUpdateInput(in UpdateUsuario) ports.UpdateInput {
	return ports.UpdateInput{Nome: in.Nome, Email: in.Email, Senha: in.Senha}
}

// FromDomain converts a persisted usuario into its transport representation.
func FromDomain(p *projection.Projection[*domain.Usuario]) Usuario {
	if p == nil || p.Entity == nil {
		return Usuario{}
	}
	return Usuario{
		ID:        p.Entity.ID,
		Nome:      p.Entity.Nome,
		Email:     p.Entity.Email,
		CreatedAt: p.Metadata.CreatedAt,
		UpdatedAt: p.Metadata.UpdatedAt,
	}
}

func FromDomainList(list []*projection.Projection[*domain.Usuario]) []Usuario {
	result := make([]Usuario, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomain(p))
	}
	return result
}
