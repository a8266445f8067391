package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type entry struct {
	pet       domain.Pet
	createdAt time.Time
	updatedAt time.Time
}

// Repository is an in-memory pet persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	pets   map[int64]*entry
	nextID int64
	now    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{pets: map[int64]*entry{}, now: time.Now}
}

func (r *Repository) Create(_ context.Context, pet *domain.Pet) (*projection.Projection[*domain.Pet], error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	clone := *pet
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	now := r.now().UTC()
	e := &entry{pet: clone, createdAt: now, updatedAt: now}
	r.pets[clone.ID] = e
	return e.project(), nil
}

// Update copies the listed fields onto the stored pet.
func (r *Repository) Update(_ context.Context, pet *domain.Pet, fields []string) (*projection.Projection[*domain.Pet], error) {
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	if _, err := fieldmap.Pets.Columns(fields); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.pets[pet.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	next := e.pet
	for _, field := range fields {
		switch field {
		case "nome":
			next.Nome = pet.Nome
		case "raca":
			next.Raca = pet.Raca
		case "especie":
			next.Especie = pet.Especie
		case "idade":
			next.Idade = pet.Idade
		case "sexo":
			next.Sexo = pet.Sexo
		case "corPelagem":
			next.CorPelagem = pet.CorPelagem
		case "castrado":
			next.Castrado = pet.Castrado
		case "foto_url":
			next.FotoURL = pet.FotoURL
		case "usuarioId":
			next.UsuarioID = pet.UsuarioID
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	e.pet = next
	e.updatedAt = r.now().UTC()
	return e.project(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Pet], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.pets[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return e.project(), nil
}

func (r *Repository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pets[id]
	return ok, nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Pet], error) {
	return r.filter(func(*domain.Pet) bool { return true }), nil
}

func (r *Repository) ListByUsuario(_ context.Context, usuarioID int64) ([]*projection.Projection[*domain.Pet], error) {
	return r.filter(func(p *domain.Pet) bool { return p.UsuarioID == usuarioID }), nil
}

func (r *Repository) CountByUsuario(ctx context.Context, usuarioID int64) (int64, error) {
	list, err := r.ListByUsuario(ctx, usuarioID)
	return int64(len(list)), err
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

func (r *Repository) filter(keep func(*domain.Pet) bool) []*projection.Projection[*domain.Pet] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Pet], 0, len(r.pets))
	for _, e := range r.pets {
		if keep(&e.pet) {
			list = append(list, e.project())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Entity.ID < list[j].Entity.ID })
	return list
}

func (e *entry) project() *projection.Projection[*domain.Pet] {
	clone := e.pet
	return projection.New(&clone, e.createdAt, e.updatedAt)
}
