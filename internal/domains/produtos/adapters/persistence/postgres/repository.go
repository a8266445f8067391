package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/petcare/petcare-api/internal/domains/produtos/domain"
	"github.com/petcare/petcare-api/internal/domains/produtos/ports"
	"github.com/petcare/petcare-api/internal/shared/fieldmap"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists produtos in PostgreSQL. The pet reference lives in column petid.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type produtoRecord struct {
	ID              int64           `gorm:"primaryKey;column:id"`
	Nome            string          `gorm:"column:nome"`
	Descricao       string          `gorm:"column:descricao"`
	Tipo            string          `gorm:"column:tipo"`
	Preco           decimal.Decimal `gorm:"column:preco;type:numeric(12,2)"`
	Imagem          string          `gorm:"column:imagem"`
	PetID           *int64          `gorm:"column:petid"`
	DataCompra      *time.Time      `gorm:"column:data_compra"`
	Observacoes     string          `gorm:"column:observacoes"`
	QuantidadeVezes *int32          `gorm:"column:quantidade_vezes"`
	QuandoConsumir  string          `gorm:"column:quando_consumir"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (produtoRecord) TableName() string { return "produtos" }

var petColumn = pq.QuoteIdentifier(fieldmap.Produtos.MustColumn("petId"))

func (r *Repository) Create(ctx context.Context, produto *domain.Produto) (*projection.Projection[*domain.Produto], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, errors.New("produto is nil")
	}
	if err := produto.Validate(); err != nil {
		return nil, err
	}
	record := toRecord(produto)
	record.ID = 0
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, translateError(err)
	}
	return record.toProjection(), nil
}

// Update writes the columns that back the listed API fields.
func (r *Repository) Update(ctx context.Context, produto *domain.Produto, fields []string) (*projection.Projection[*domain.Produto], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, errors.New("produto is nil")
	}
	if err := produto.Validate(); err != nil {
		return nil, err
	}
	columns, err := fieldmap.Produtos.Columns(fields)
	if err != nil {
		return nil, err
	}
	record := toRecord(produto)
	record.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&produtoRecord{ID: produto.ID}).
		Select(append(columns, fieldmap.Produtos.MustColumn("updatedAt"))).
		Updates(&record)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, produto.ID)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*projection.Projection[*domain.Produto], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record produtoRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Produto], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	return r.find(ctx, r.db)
}

func (r *Repository) ListByPet(ctx context.Context, petID int64) ([]*projection.Projection[*domain.Produto], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	return r.find(ctx, r.db.Where(petColumn+" = ?", petID))
}

func (r *Repository) CountByPet(ctx context.Context, petID int64) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&produtoRecord{}).Where(petColumn+" = ?", petID).Count(&count).Error
	return count, err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&produtoRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) find(ctx context.Context, query *gorm.DB) ([]*projection.Projection[*domain.Produto], error) {
	var records []produtoRecord
	if err := query.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	result := make([]*projection.Projection[*domain.Produto], 0, len(records))
	for i := range records {
		result = append(result, records[i].toProjection())
	}
	return result, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres produto repository not configured")
	}
	return nil
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ports.ErrPetMissing
	}
	return err
}

func toRecord(p *domain.Produto) produtoRecord {
	return produtoRecord{
		ID:              p.ID,
		Nome:            p.Nome,
		Descricao:       p.Descricao,
		Tipo:            p.Tipo,
		Preco:           p.Preco,
		Imagem:          p.Imagem,
		PetID:           p.PetID,
		DataCompra:      p.DataCompra,
		Observacoes:     p.Observacoes,
		QuantidadeVezes: p.QuantidadeVezes,
		QuandoConsumir:  p.QuandoConsumir,
	}
}

func (r produtoRecord) toProjection() *projection.Projection[*domain.Produto] {
	return projection.New(&domain.Produto{
		ID:              r.ID,
		Nome:            r.Nome,
		Descricao:       r.Descricao,
		Tipo:            r.Tipo,
		Preco:           r.Preco,
		Imagem:          r.Imagem,
		PetID:           r.PetID,
		DataCompra:      r.DataCompra,
		Observacoes:     r.Observacoes,
		QuantidadeVezes: r.QuantidadeVezes,
		QuandoConsumir:  r.QuandoConsumir,
	}, r.CreatedAt, r.UpdatedAt)
}
