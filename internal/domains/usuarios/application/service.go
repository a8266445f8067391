package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// Service exposes usuario bounded context use cases.
type Service struct {
	repo     ports.Repository
	hasher   ports.PasswordHasher
	pets     ports.PetDirectory
	sessions ports.SessionRevoker
	profile  rules.Profile

	dummyOnce sync.Once
	dummyHash string
}

// Option customizes a Service.
type Option func(*Service)

// WithPetDirectory enables pet listing and the delete guard.
func WithPetDirectory(pets ports.PetDirectory) Option {
	return func(s *Service) { s.pets = pets }
}

// WithSessionRevoker drops sessions when a usuario is deleted.
func WithSessionRevoker(revoker ports.SessionRevoker) Option {
	return func(s *Service) {
		if revoker != nil {
			s.sessions = revoker
		}
	}
}

// WithProfile selects the validation profile. Defaults to rules.Main.
func WithProfile(profile rules.Profile) Option {
	return func(s *Service) { s.profile = profile }
}

func NewService(repo ports.Repository, hasher ports.PasswordHasher, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		hasher:   hasher,
		sessions: ports.NoopSessionRevoker,
		profile:  rules.Main(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]*projection.Projection[*domain.Usuario], error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Usuario], error) {
	return s.repo.GetByID(ctx, id)
}

// ListPets returns the pets owned by the usuario, failing when it does not exist.
func (s *Service) ListPets(ctx context.Context, id int64) ([]*projection.Projection[*petdomain.Pet], error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if s.pets == nil {
		return []*projection.Projection[*petdomain.Pet]{}, nil
	}
	return s.pets.ListByUsuario(ctx, id)
}

func (s *Service) Create(ctx context.Context, input ports.CreateInput) (*projection.Projection[*domain.Usuario], error) {
	usuario, err := domain.NewUsuario(input.Nome, input.Email)
	if err != nil {
		return nil, mapError(err)
	}
	if err := domain.ValidateSenha(input.Senha); err != nil {
		return nil, mapError(err)
	}
	if err := s.ensureEmailAvailable(ctx, usuario.Email, 0); err != nil {
		return nil, err
	}
	if err := s.ensureNomeAvailable(ctx, usuario.Nome, 0); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(input.Senha)
	if err != nil {
		return nil, err
	}
	usuario.SenhaHash = hash
	created, err := s.repo.Create(ctx, usuario)
	if err != nil {
		return nil, mapError(err)
	}
	return created, nil
}

// Update applies a partial update and re-hashes the password when supplied.
func (s *Service) Update(ctx context.Context, id int64, input ports.UpdateInput) (*projection.Projection[*domain.Usuario], error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current.Entity
	var fields []string

	if input.Nome != nil {
		if err := updated.Rename(*input.Nome); err != nil {
			return nil, mapError(err)
		}
		if updated.Nome != current.Entity.Nome {
			if err := s.ensureNomeAvailable(ctx, updated.Nome, id); err != nil {
				return nil, err
			}
		}
		fields = append(fields, "nome")
	}
	if input.Email != nil {
		if err := updated.ChangeEmail(*input.Email); err != nil {
			return nil, mapError(err)
		}
		if !domain.SameEmail(updated.Email, current.Entity.Email) {
			if err := s.ensureEmailAvailable(ctx, updated.Email, id); err != nil {
				return nil, err
			}
		}
		fields = append(fields, "email")
	}
	if input.Senha != nil {
		if err := domain.ValidateSenha(*input.Senha); err != nil {
			return nil, mapError(err)
		}
		hash, err := s.hasher.Hash(*input.Senha)
		if err != nil {
			return nil, err
		}
		updated.SenhaHash = hash
		fields = append(fields, "senha")
	}
	if len(fields) == 0 {
		return current, nil
	}
	saved, err := s.repo.Update(ctx, &updated, fields)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete removes a usuario that owns no pets and revokes its sessions.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.pets != nil {
		count, err := s.pets.CountByUsuario(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return mapError(ports.ErrReferenced)
		}
	}
	// Sessions go first so a failed revoke leaves the usuario intact.
	if err := s.sessions.DeleteByUsuario(ctx, id); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

// Authenticate verifies credentials. Unknown emails still pay for a hash comparison.
func (s *Service) Authenticate(ctx context.Context, email, senha string) (*projection.Projection[*domain.Usuario], error) {
	email = domain.NormalizeEmail(email)
	if email == "" || senha == "" {
		return nil, ErrInvalidCredentials
	}
	found, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ports.ErrNotFound) {
		_ = s.hasher.Compare(s.placeholderHash(), senha)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(found.Entity.SenhaHash, senha); err != nil {
		if errors.Is(err, ports.ErrSenhaMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return found, nil
}

func (s *Service) ensureEmailAvailable(ctx context.Context, email string, selfID int64) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.Entity.ID != selfID:
		return mapError(ports.ErrDuplicateEmail)
	}
	return nil
}

func (s *Service) ensureNomeAvailable(ctx context.Context, nome string, selfID int64) error {
	if !s.profile.UniqueUsuarioNome {
		return nil
	}
	existing, err := s.repo.GetByNome(ctx, nome)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.Entity.ID != selfID:
		return mapError(ports.ErrDuplicateNome)
	}
	return nil
}

func (s *Service) placeholderHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("placeholder-senha")
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}

var _ ports.Service = (*Service)(nil)
