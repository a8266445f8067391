package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petcare/petcare-api/internal/domains/pets/ports"
)

var _ ports.CreationReceipts = (*Receipts)(nil)

// Receipts stores pet creation receipts in pet_creation_receipts. An expired row is
// overwritten in place by the next Claim for its key.
type Receipts struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReceipts(db *gorm.DB) *Receipts {
	return &Receipts{db: db, now: time.Now}
}

type receiptRecord struct {
	Key         string    `gorm:"primaryKey;column:idempotency_key"`
	Fingerprint string    `gorm:"column:fingerprint"`
	PetID       int64     `gorm:"column:pet_id"`
	IssuedAt    time.Time `gorm:"column:issued_at"`
}

func (receiptRecord) TableName() string { return "pet_creation_receipts" }

func (r *Receipts) Find(ctx context.Context, key string) (*ports.CreationReceipt, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record receiptRecord
	err := r.db.WithContext(ctx).
		Where("idempotency_key = ? AND issued_at > ?", key, r.cutoff()).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.toReceipt(), nil
}

// Claim inserts the receipt, taking over the key only when the stored row has expired.
func (r *Receipts) Claim(ctx context.Context, receipt ports.CreationReceipt) (*ports.CreationReceipt, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := receiptRecord{
		Key:         receipt.Key,
		Fingerprint: receipt.Fingerprint,
		PetID:       receipt.PetID,
		IssuedAt:    r.now().UTC(),
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idempotency_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"fingerprint", "pet_id", "issued_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "pet_creation_receipts.issued_at <= ?", Vars: []any{r.cutoff()}},
		}},
	}).Create(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		return record.toReceipt(), nil
	}

	holder, err := r.Find(ctx, receipt.Key)
	if err != nil {
		return nil, err
	}
	if holder == nil {
		return nil, errors.New("receipt vanished during claim")
	}
	if !holder.Matches(receipt.Fingerprint) {
		return holder, ports.ErrIdempotencyConflict
	}
	return holder, nil
}

func (r *Receipts) cutoff() time.Time {
	return r.now().UTC().Add(-ports.ReceiptTTL)
}

func (r *Receipts) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres pet receipts not configured")
	}
	return nil
}

func (rec receiptRecord) toReceipt() *ports.CreationReceipt {
	return &ports.CreationReceipt{
		Key:         rec.Key,
		Fingerprint: rec.Fingerprint,
		PetID:       rec.PetID,
		IssuedAt:    rec.IssuedAt,
	}
}
