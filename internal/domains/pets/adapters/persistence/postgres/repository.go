package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists pets in PostgreSQL using GORM. The schema is owned by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type petRecord struct {
	ID         int64     `gorm:"primaryKey;column:id"`
	Nome       string    `gorm:"column:nome"`
	Raca       string    `gorm:"column:raca"`
	Especie    string    `gorm:"column:especie"`
	Idade      int32     `gorm:"column:idade"`
	Sexo       string    `gorm:"column:sexo"`
	CorPelagem string    `gorm:"column:cor_pelagem"`
	Castrado   bool      `gorm:"column:castrado"`
	FotoURL    string    `gorm:"column:foto_url"`
	UsuarioID  int64     `gorm:"column:usuario_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

var usuarioColumn = pq.QuoteIdentifier(fieldmap.Pets.MustColumn("usuarioId"))

func (r *Repository) Create(ctx context.Context, pet *domain.Pet) (*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	clone := *pet
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(&clone)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ports.ErrOwnerMissing
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// Update writes the columns that back the listed API fields.
func (r *Repository) Update(ctx context.Context, pet *domain.Pet, fields []string) (*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, errors.New("pet is nil")
	}
	if err := pet.Validate(); err != nil {
		return nil, err
	}
	columns, err := fieldmap.Pets.Columns(fields)
	if err != nil {
		return nil, err
	}
	record := toRecord(pet)
	record.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&petRecord{ID: pet.ID}).
		Select(append(columns, fieldmap.Pets.MustColumn("updatedAt"))).
		Updates(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return nil, ports.ErrOwnerMissing
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, pet.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record petRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&petRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Pet], error) {
	return r.find(ctx, r.db)
}

func (r *Repository) ListByUsuario(ctx context.Context, usuarioID int64) ([]*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	return r.find(ctx, r.db.Where(usuarioColumn+" = ?", usuarioID))
}

func (r *Repository) CountByUsuario(ctx context.Context, usuarioID int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&petRecord{}).Where(usuarioColumn+" = ?", usuarioID).Count(&count).Error
	return count, err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&petRecord{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ports.ErrReferenced
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) find(ctx context.Context, query *gorm.DB) ([]*projection.Projection[*domain.Pet], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []petRecord
	if err := query.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*projection.Projection[*domain.Pet], 0, len(records))
	for i := range records {
		result = append(result, records[i].toProjection())
	}
	return result, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres pet repository not configured")
	}
	return nil
}

func toRecord(pet *domain.Pet) petRecord {
	return petRecord{
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
	}
}

func (r petRecord) toProjection() *projection.Projection[*domain.Pet] {
	return projection.New(&domain.Pet{
		ID:         r.ID,
		Nome:       r.Nome,
		Raca:       r.Raca,
		Especie:    r.Especie,
		Idade:      r.Idade,
		Sexo:       r.Sexo,
		CorPelagem: r.CorPelagem,
		Castrado:   r.Castrado,
		FotoURL:    r.FotoURL,
		UsuarioID:  r.UsuarioID,
	}, r.CreatedAt, r.UpdatedAt)
}
