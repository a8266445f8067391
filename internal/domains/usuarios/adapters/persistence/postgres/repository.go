package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/petcare/petcare-api/internal/domains/usuarios/domain"
	"github.com/petcare/petcare-api/internal/domains/usuarios/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists usuarios in PostgreSQL using GORM. The schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type usuarioRecord struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Nome      string    `gorm:"column:nome"`
	Email     string    `gorm:"column:email"`
	SenhaHash string    `gorm:"column:senha_hash"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (usuarioRecord) TableName() string { return "usuarios" }

func (r *Repository) Create(ctx context.Context, usuario *domain.Usuario) (*projection.Projection[*domain.Usuario], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.New("usuario is nil")
	}
	clone := *usuario
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return record.toProjection(), nil
}

// Update writes the columns that back the listed API fields.
func (r *Repository) Update(ctx context.Context, usuario *domain.Usuario, fields []string) (*projection.Projection[*domain.Usuario], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, errors.New("usuario is nil")
	}
	columns, err := fieldmap.Usuarios.Columns(fields)
	if err != nil {
		return nil, err
	}
	record := toRecord(usuario)
	record.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&usuarioRecord{ID: usuario.ID}).
		Select(append(columns, fieldmap.Usuarios.MustColumn("updatedAt"))).
		Updates(&record)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, usuario.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Usuario], error) {
	return r.first(ctx, "id = ?", id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*projection.Projection[*domain.Usuario], error) {
	return r.first(ctx, "LOWER(email) = ?", domain.NormalizeEmail(email))
}

func (r *Repository) GetByNome(ctx context.Context, nome string) (*projection.Projection[*domain.Usuario], error) {
	return r.first(ctx, "nome = ?", strings.TrimSpace(nome))
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&usuarioRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns all usuarios ordered by id.
func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Usuario], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []usuarioRecord
	if err := r.db.WithContext(ctx).Order(pq.QuoteIdentifier("id")).Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*projection.Projection[*domain.Usuario], 0, len(records))
	for i := range records {
		result = append(result, records[i].toProjection())
	}
	return result, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&usuarioRecord{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) first(ctx context.Context, query string, arg any) (*projection.Projection[*domain.Usuario], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record usuarioRecord
	if err := r.db.WithContext(ctx).Where(query, arg).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres usuario repository not configured")
	}
	return nil
}

// translateError relies on gorm.Config.TranslateError being enabled by platform/postgres.
func translateError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ports.ErrDuplicateEmail
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ports.ErrReferenced
	}
	return err
}

func toRecord(usuario *domain.Usuario) usuarioRecord {
	return usuarioRecord{
		ID:        usuario.ID,
		Nome:      usuario.Nome,
		Email:     usuario.Email,
		SenhaHash: usuario.SenhaHash,
	}
}

func (r usuarioRecord) toProjection() *projection.Projection[*domain.Usuario] {
	return projection.New(&domain.Usuario{
		ID:        r.ID,
		Nome:      r.Nome,
		Email:     r.Email,
		SenhaHash: r.SenhaHash,
	}, r.CreatedAt, r.UpdatedAt)
}
