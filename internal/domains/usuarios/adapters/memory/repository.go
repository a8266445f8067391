package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type entry struct {
	usuario   domain.Usuario
	createdAt time.Time
	updatedAt time.Time
}

// Repository is an in-memory usuario persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	usuarios map[int64]*entry
	nextID   int64
	now      func() time.Time
}

func NewRepository() *Repository {
	return &Repository{usuarios: map[int64]*entry{}, now: time.Now}
}

func (r *Repository) Create(_ context.Context, usuario *domain.Usuario) (*projection.Projection[*domain.Usuario], error) {
	if usuario == nil {
		return nil, errors.New("usuario is nil")
	}
	clone := *usuario
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTakenLocked(clone.Email, 0) {
		return nil, ports.ErrDuplicateEmail
	}
	r.nextID++
	clone.ID = r.nextID
	now := r.now().UTC()
	e := &entry{usuario: clone, createdAt: now, updatedAt: now}
	r.usuarios[clone.ID] = e
	return e.project(), nil
}

// Update copies the listed fields onto the stored usuario.
func (r *Repository) Update(_ context.Context, usuario *domain.Usuario, fields []string) (*projection.Projection[*domain.Usuario], error) {
	if usuario == nil {
		return nil, errors.New("usuario is nil")
	}
	if _, err := fieldmap.Usuarios.Columns(fields); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.usuarios[usuario.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	next := e.usuario
	for _, field := range fields {
		switch field {
		case "nome":
			next.Nome = usuario.Nome
		case "email":
			if r.emailTakenLocked(usuario.Email, usuario.ID) {
				return nil, ports.ErrDuplicateEmail
			}
			next.Email = usuario.Email
		case "senha":
			next.SenhaHash = usuario.SenhaHash
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	e.usuario = next
	e.updatedAt = r.now().UTC()
	return e.project(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Usuario], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.usuarios[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return e.project(), nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*projection.Projection[*domain.Usuario], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.usuarios {
		if domain.SameEmail(e.usuario.Email, email) {
			return e.project(), nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) GetByNome(_ context.Context, nome string) (*projection.Projection[*domain.Usuario], error) {
	nome = strings.TrimSpace(nome)
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.usuarios {
		if e.usuario.Nome == nome {
			return e.project(), nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.usuarios[id]
	return ok, nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Usuario], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Usuario], 0, len(r.usuarios))
	for _, e := range r.usuarios {
		list = append(list, e.project())
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Entity.ID < list[j].Entity.ID })
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.usuarios[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.usuarios, id)
	return nil
}

func (r *Repository) emailTakenLocked(email string, selfID int64) bool {
	for id, e := range r.usuarios {
		if id != selfID && domain.SameEmail(e.usuario.Email, email) {
			return true
		}
	}
	return false
}

func (e *entry) project() *projection.Projection[*domain.Usuario] {
	clone := e.usuario
	return projection.New(&clone, e.createdAt, e.updatedAt)
}
