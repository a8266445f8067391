package application

import (
	"context"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// Service orchestrates the produtos use cases.
type Service struct {
	repo    ports.Repository
	pets    ports.PetDirectory
	profile rules.Profile
}

type Option func(*Service)

// WithProfile selects the validation profile. Defaults to rules.Main.
func WithProfile(profile rules.Profile) Option {
	return func(s *Service) { s.profile = profile }
}

func NewService(repo ports.Repository, pets ports.PetDirectory, opts ...Option) *Service {
	s := &Service{repo: repo, pets: pets, profile: rules.Main()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Produto], error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Produto], error) {
	return s.repo.GetByID(ctx, id)
}

// ListByPet returns the produtos linked to an existing pet.
func (s *Service) ListByPet(ctx context.Context, petID int64) ([]*projection.Projection[*domain.Produto], error) {
	if err := s.ensurePet(ctx, petID); err != nil {
		return nil, err
	}
	return s.repo.ListByPet(ctx, petID)
}

// GetPet returns the pet owning the produto.
func (s *Service) GetPet(ctx context.Context, id int64) (*projection.Projection[*petdomain.Pet], error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Entity.PetID == nil || s.pets == nil {
		return nil, ports.ErrNoPet
	}
	ok, err := s.pets.Exists(ctx, *current.Entity.PetID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ports.ErrNoPet
	}
	return s.pets.GetByID(ctx, *current.Entity.PetID)
}

func (s *Service) Create(ctx context.Context, input ports.MutationInput) (*projection.Projection[*domain.Produto], error) {
	if input.Nome == nil {
		return nil, mapError(domain.ErrEmptyNome)
	}
	if input.Tipo == nil {
		return nil, mapError(domain.ErrEmptyTipo)
	}
	if input.Preco == nil {
		return nil, mapError(domain.ErrMissingPreco)
	}
	produto, err := domain.NewProduto(*input.Nome, *input.Tipo, *input.Preco)
	if err != nil {
		return nil, mapError(err)
	}
	partial := input
	partial.Nome, partial.Tipo, partial.Preco = nil, nil, nil
	if _, err := applyMutation(produto, partial); err != nil {
		return nil, mapError(err)
	}
	if err := s.checkProfile(produto); err != nil {
		return nil, mapError(err)
	}
	if produto.PetID != nil {
		if err := s.ensurePet(ctx, *produto.PetID); err != nil {
			return nil, mapError(err)
		}
	}
	created, err := s.repo.Create(ctx, produto)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// Update applies a partial update; PATCH and PUT share it. A changed pet must exist.
func (s *Service) Update(ctx context.Context, id int64, input ports.MutationInput) (*projection.Projection[*domain.Produto], error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current.Entity
	fields, err := applyMutation(&updated, input)
	if err != nil {
		return nil, mapError(err)
	}
	if len(fields) == 0 {
		return current, nil
	}
	if err := s.checkProfile(&updated); err != nil {
		return nil, mapError(err)
	}
	if updated.PetID != nil && !samePet(updated.PetID, current.Entity.PetID) {
		if err := s.ensurePet(ctx, *updated.PetID); err != nil {
			return nil, mapError(err)
		}
	}
	saved, err := s.repo.Update(ctx, &updated, fields)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// checkProfile enforces the rules that depend on the deployment target.
func (s *Service) checkProfile(p *domain.Produto) error {
	if err := s.profile.CheckProdutoTipo(p.Tipo); err != nil {
		return err
	}
	if s.profile.ProdutoPetRequired && p.PetID == nil {
		return domain.ErrMissingPet
	}
	if s.profile.ProdutoDataCompraRequired && p.DataCompra == nil {
		return domain.ErrMissingDataCompra
	}
	if s.profile.RequiresMedicinalDetails(p.Tipo) && (p.QuantidadeVezes == nil || p.QuandoConsumir == "") {
		return rules.ErrMedicinalFields
	}
	return nil
}

func (s *Service) ensurePet(ctx context.Context, petID int64) error {
	if s.pets == nil {
		return nil
	}
	ok, err := s.pets.Exists(ctx, petID)
	if err != nil {
		return err
	}
	if !ok {
		return ports.ErrPetMissing
	}
	return nil
}

// applyMutation copies present fields onto target and returns their API names.
func applyMutation(target *domain.Produto, input ports.MutationInput) ([]string, error) {
	var fields []string
	if input.Nome != nil {
		if err := target.Rename(*input.Nome); err != nil {
			return nil, err
		}
		fields = append(fields, "nome")
	}
	if input.Tipo != nil {
		if err := target.ChangeTipo(*input.Tipo); err != nil {
			return nil, err
		}
		fields = append(fields, "tipo")
	}
	if input.Preco != nil {
		if err := target.SetPreco(*input.Preco); err != nil {
			return nil, err
		}
		fields = append(fields, "preco")
	}
	if input.PetID != nil || input.ClearPet {
		if err := target.AssignPet(input.PetID); err != nil {
			return nil, err
		}
		fields = append(fields, "petId")
	}
	if input.DataCompra != nil {
		if err := target.SetDataCompra(*input.DataCompra); err != nil {
			return nil, err
		}
		fields = append(fields, "data_compra")
	}
	if input.QuantidadeVezes != nil {
		if err := target.SetQuantidadeVezes(input.QuantidadeVezes); err != nil {
			return nil, err
		}
		fields = append(fields, "quantidade_vezes")
	}
	descricao, imagem, observacoes, quando := target.Descricao, target.Imagem, target.Observacoes, target.QuandoConsumir
	if input.Descricao != nil {
		descricao = *input.Descricao
		fields = append(fields, "descricao")
	}
	if input.Imagem != nil {
		imagem = *input.Imagem
		fields = append(fields, "imagem")
	}
	if input.Observacoes != nil {
		observacoes = *input.Observacoes
		fields = append(fields, "observacoes")
	}
	if input.QuandoConsumir != nil {
		quando = *input.QuandoConsumir
		fields = append(fields, "quando_consumir")
	}
	target.UpdateDetails(descricao, imagem, observacoes, quando)
	return fields, nil
}

func samePet(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

var _ ports.Service = (*Service)(nil)
