package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

type entry struct {
	produto   domain.Produto
	createdAt time.Time
	updatedAt time.Time
}

// Repository keeps produtos in process memory.
type Repository struct {
	mu       sync.RWMutex
	produtos map[int64]*entry
	nextID   int64
	now      func() time.Time
}

func NewRepository() *Repository {
	return &Repository{produtos: map[int64]*entry{}, now: time.Now}
}

func (r *Repository) Create(_ context.Context, produto *domain.Produto) (*projection.Projection[*domain.Produto], error) {
	if produto == nil {
		return nil, errors.New("produto is nil")
	}
	clone := copyProduto(produto)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone.ID = r.nextID
	now := r.now().UTC()
	e := &entry{produto: clone, createdAt: now, updatedAt: now}
	r.produtos[clone.ID] = e
	return e.project(), nil
}

// Update copies the listed fields onto the stored produto.
func (r *Repository) Update(_ context.Context, produto *domain.Produto, fields []string) (*projection.Projection[*domain.Produto], error) {
	if produto == nil {
		return nil, errors.New("produto is nil")
	}
	if _, err := fieldmap.Produtos.Columns(fields); err != nil {
		return nil, err
	}
	src := copyProduto(produto)
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.produtos[produto.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	next := e.produto
	for _, field := range fields {
		switch field {
		case "nome":
			next.Nome = src.Nome
		case "descricao":
			next.Descricao = src.Descricao
		case "tipo":
			next.Tipo = src.Tipo
		case "preco":
			next.Preco = src.Preco
		case "imagem":
			next.Imagem = src.Imagem
		case "petId":
			next.PetID = src.PetID
		case "data_compra":
			next.DataCompra = src.DataCompra
		case "observacoes":
			next.Observacoes = src.Observacoes
		case "quantidade_vezes":
			next.QuantidadeVezes = src.QuantidadeVezes
		case "quando_consumir":
			next.QuandoConsumir = src.QuandoConsumir
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	e.produto = next
	e.updatedAt = r.now().UTC()
	return e.project(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*projection.Projection[*domain.Produto], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.produtos[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return e.project(), nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Produto], error) {
	return r.filter(func(*domain.Produto) bool { return true }), nil
}

func (r *Repository) ListByPet(_ context.Context, petID int64) ([]*projection.Projection[*domain.Produto], error) {
	return r.filter(func(p *domain.Produto) bool { return p.PetID != nil && *p.PetID == petID }), nil
}

func (r *Repository) CountByPet(ctx context.Context, petID int64) (int64, error) {
	list, err := r.ListByPet(ctx, petID)
	return int64(len(list)), err
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.produtos[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.produtos, id)
	return nil
}

func (r *Repository) filter(keep func(*domain.Produto) bool) []*projection.Projection[*domain.Produto] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Produto], 0, len(r.produtos))
	for _, e := range r.produtos {
		if keep(&e.produto) {
			list = append(list, e.project())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Entity.ID < list[j].Entity.ID })
	return list
}

func (e *entry) project() *projection.Projection[*domain.Produto] {
	clone := copyProduto(&e.produto)
	return projection.New(&clone, e.createdAt, e.updatedAt)
}

// copyProduto detaches the pointer fields so callers cannot mutate stored state.
func copyProduto(p *domain.Produto) domain.Produto {
	clone := *p
	if p.PetID != nil {
		v := *p.PetID
		clone.PetID = &v
	}
	if p.DataCompra != nil {
		v := *p.DataCompra
		clone.DataCompra = &v
	}
	if p.QuantidadeVezes != nil {
		v := *p.QuantidadeVezes
		clone.QuantidadeVezes = &v
	}
	return clone
}
