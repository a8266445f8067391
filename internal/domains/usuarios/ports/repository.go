package ports

import (
	"context"
	"errors"

	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var (
	ErrNotFound       = errors.New("usuario not found")
	ErrDuplicateEmail = errors.New("usuario email already stored")
	ErrDuplicateNome  = errors.New("usuario nome already stored")
	// ErrReferenced is returned when rows elsewhere still point at the usuario.
	ErrReferenced = errors.New("usuario still referenced")
)

// Repository persists usuarios. Update writes only the listed API fields.
type Repository interface {
	Create(ctx context.Context, usuario *domain.Usuario) (*projection.Projection[*domain.Usuario], error)
	Update(ctx context.Context, usuario *domain.Usuario, fields []string) (*projection.Projection[*domain.Usuario], error)
	GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Usuario], error)
	GetByEmail(ctx context.Context, email string) (*projection.Projection[*domain.Usuario], error)
	GetByNome(ctx context.Context, nome string) (*projection.Projection[*domain.Usuario], error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*projection.Projection[*domain.Usuario], error)
	Delete(ctx context.Context, id int64) error
}
