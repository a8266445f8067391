package application

import (
	"context"
	"fmt"
	"strings"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	produtodomain "github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// Service orchestrates the pets bounded context use cases.
type Service struct {
	repo        ports.Repository
	owners      ports.OwnerDirectory
	produtos    ports.ProdutoDirectory
	receipts    ports.CreationReceipts
	profile     rules.Profile
}

// Option customizes a Service.
type Option func(*Service)

// WithProdutoDirectory enables produto listing and the delete guard.
func WithProdutoDirectory(produtos ports.ProdutoDirectory) Option {
	return func(s *Service) { s.produtos = produtos }
}

// WithCreationReceipts enables Idempotency-Key handling on Create.
func WithCreationReceipts(receipts ports.CreationReceipts) Option {
	return func(s *Service) { s.receipts = receipts }
}

// WithProfile selects the validation profile. Defaults to rules.Main.
func WithProfile(profile rules.Profile) Option {
	return func(s *Service) { s.profile = profile }
}

// NewService wires the pets service with its dependencies.
func NewService(repo ports.Repository, owners ports.OwnerDirectory, opts ...Option) *Service {
	s := &Service{repo: repo, owners: owners, profile: rules.Main()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Pet], error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error) {
	return s.repo.GetByID(ctx, id)
}

// ListProdutos returns the produtos of a pet, failing when the pet does not exist.
func (s *Service) ListProdutos(ctx context.Context, id int64) ([]*projection.Projection[*produtodomain.Produto], error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if s.produtos == nil {
		return []*projection.Projection[*produtodomain.Produto]{}, nil
	}
	return s.produtos.ListByPet(ctx, id)
}

// Create persists a new pet. A repeated IdempotencyKey with the same payload returns the original pet.
func (s *Service) Create(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error) {
	pet, err := s.buildPet(input.PetMutationInput)
	if err != nil {
		return nil, mapError(err)
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	var fingerprint string
	if key != "" && s.receipts != nil {
		fingerprint, err = FingerprintAddPet(input)
		if err != nil {
			return nil, err
		}
		receipt, err := s.receipts.Find(ctx, key)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			if !receipt.Matches(fingerprint) {
				return nil, mapError(ports.ErrIdempotencyConflict)
			}
			return s.repo.GetByID(ctx, receipt.PetID)
		}
	}

	if err := s.ensureOwner(ctx, pet.UsuarioID); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, pet)
	if err != nil {
		return nil, mapError(err)
	}
	if fingerprint == "" {
		return created, nil
	}

	holder, claimErr := s.receipts.Claim(ctx, ports.CreationReceipt{Key: key, Fingerprint: fingerprint, PetID: created.Entity.ID})
	if claimErr == nil && holder.PetID == created.Entity.ID {
		return created, nil
	}
	// A concurrent request holds the key; our pet is dropped.
	if err := s.repo.Delete(ctx, created.Entity.ID); err != nil {
		return nil, err
	}
	if claimErr != nil {
		return nil, mapError(claimErr)
	}
	return s.repo.GetByID(ctx, holder.PetID)
}

// Update applies a partial update; a changed owner must exist.
func (s *Service) Update(ctx context.Context, input pettypes.UpdatePetInput) (*projection.Projection[*domain.Pet], error) {
	current, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	updated := *current.Entity
	fields, err := s.applyMutation(&updated, input.PetMutationInput)
	if err != nil {
		return nil, mapError(err)
	}
	if len(fields) == 0 {
		return current, nil
	}
	if updated.UsuarioID != current.Entity.UsuarioID {
		if err := s.ensureOwner(ctx, updated.UsuarioID); err != nil {
			return nil, err
		}
	}
	saved, err := s.repo.Update(ctx, &updated, fields)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete removes a pet that owns no produtos.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.produtos != nil {
		count, err := s.produtos.CountByPet(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return mapError(ports.ErrReferenced)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Service) ensureOwner(ctx context.Context, usuarioID int64) error {
	if s.owners == nil {
		return nil
	}
	ok, err := s.owners.Exists(ctx, usuarioID)
	if err != nil {
		return err
	}
	if !ok {
		return mapError(ports.ErrOwnerMissing)
	}
	return nil
}

func (s *Service) buildPet(input pettypes.PetMutationInput) (*domain.Pet, error) {
	if input.Nome == nil {
		return nil, domain.ErrEmptyNome
	}
	if input.Raca == nil {
		return nil, domain.ErrEmptyRaca
	}
	if input.UsuarioID == nil {
		return nil, domain.ErrMissingUsuario
	}
	pet, err := domain.NewPet(*input.Nome, *input.Raca, *input.UsuarioID)
	if err != nil {
		return nil, err
	}
	partial := input
	partial.Nome, partial.Raca, partial.UsuarioID = nil, nil, nil
	if _, err := s.applyMutation(pet, partial); err != nil {
		return nil, err
	}
	if err := s.checkProfile(pet, input); err != nil {
		return nil, err
	}
	return pet, nil
}

// applyMutation copies present fields onto target and returns their API names.
func (s *Service) applyMutation(target *domain.Pet, input pettypes.PetMutationInput) ([]string, error) {
	var fields []string
	if input.Nome != nil {
		if err := target.Rename(*input.Nome); err != nil {
			return nil, err
		}
		fields = append(fields, "nome")
	}
	if input.Raca != nil {
		if err := target.ChangeRaca(*input.Raca); err != nil {
			return nil, err
		}
		fields = append(fields, "raca")
	}
	if input.Idade != nil {
		if err := target.SetIdade(*input.Idade); err != nil {
			return nil, err
		}
		fields = append(fields, "idade")
	}
	if input.UsuarioID != nil {
		if err := target.AssignOwner(*input.UsuarioID); err != nil {
			return nil, err
		}
		fields = append(fields, "usuarioId")
	}
	especie, sexo, cor, foto := target.Especie, target.Sexo, target.CorPelagem, target.FotoURL
	if input.Especie != nil {
		especie = *input.Especie
		fields = append(fields, "especie")
	}
	if input.Sexo != nil {
		sexo = *input.Sexo
		fields = append(fields, "sexo")
	}
	if input.CorPelagem != nil {
		cor = *input.CorPelagem
		fields = append(fields, "corPelagem")
	}
	if input.FotoURL != nil {
		foto = *input.FotoURL
		fields = append(fields, "foto_url")
	}
	target.UpdateDetails(especie, sexo, cor, foto)
	if input.Castrado != nil {
		target.Castrado = *input.Castrado
		fields = append(fields, "castrado")
	}
	if err := s.checkProfile(target, input); err != nil {
		return nil, err
	}
	return fields, nil
}

// checkProfile applies the profile text rules to the fields present in input.
func (s *Service) checkProfile(pet *domain.Pet, input pettypes.PetMutationInput) error {
	if input.Nome != nil {
		if err := s.profile.CheckPetText(pet.Nome); err != nil {
			return fmt.Errorf("nome: %w", err)
		}
	}
	if input.Raca != nil {
		if err := s.profile.CheckPetText(pet.Raca); err != nil {
			return fmt.Errorf("raca: %w", err)
		}
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
