package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Adapters never auto-migrate on their own.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := db.AutoMigrate(
		&usuarioRecord{},
		&petRecord{},
		&produtoRecord{},
		&sessionRecord{},
		&receiptRecord{},
	); err != nil {
		return err
	}
	// Emails keep the case the client sent; uniqueness ignores it.
	return db.Exec(usuarioEmailIndex).Error
}

const usuarioEmailIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_usuarios_email_lower ON usuarios (LOWER(email))`

// Usuario schema mirrors the usuarios Postgres adapter.
type usuarioRecord struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement"`
	Nome      string    `gorm:"column:nome;not null;index"`
	Email     string    `gorm:"column:email;not null"`
	SenhaHash string    `gorm:"column:senha_hash;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (usuarioRecord) TableName() string { return "usuarios" }

// Pet schema mirrors the pets Postgres adapter. Owners with pets cannot be deleted.
type petRecord struct {
	ID         int64          `gorm:"primaryKey;column:id;autoIncrement"`
	Nome       string         `gorm:"column:nome;not null"`
	Raca       string         `gorm:"column:raca;not null"`
	Especie    string         `gorm:"column:especie"`
	Idade      int32          `gorm:"column:idade;check:chk_pets_idade,idade >= 0"`
	Sexo       string         `gorm:"column:sexo;size:32"`
	CorPelagem string         `gorm:"column:cor_pelagem"`
	Castrado   bool           `gorm:"column:castrado"`
	FotoURL    string         `gorm:"column:foto_url"`
	UsuarioID  int64          `gorm:"column:usuario_id;not null;index"`
	Usuario    *usuarioRecord `gorm:"foreignKey:UsuarioID;references:ID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
}

func (petRecord) TableName() string { return "pets" }

// Produto schema mirrors the produtos Postgres adapter. The pet reference column is petid.
type produtoRecord struct {
	ID              int64           `gorm:"primaryKey;column:id;autoIncrement"`
	Nome            string          `gorm:"column:nome;not null"`
	Descricao       string          `gorm:"column:descricao"`
	Tipo            string          `gorm:"column:tipo;not null;size:64"`
	Preco           decimal.Decimal `gorm:"column:preco;type:numeric(12,2);not null;check:chk_produtos_preco,preco >= 0"`
	Imagem          string          `gorm:"column:imagem"`
	PetID           *int64          `gorm:"column:petid;index"`
	Pet             *petRecord      `gorm:"foreignKey:PetID;references:ID;constraint:OnDelete:RESTRICT"`
	DataCompra      *time.Time      `gorm:"column:data_compra"`
	Observacoes     string          `gorm:"column:observacoes"`
	QuantidadeVezes *int32          `gorm:"column:quantidade_vezes"`
	QuandoConsumir  string          `gorm:"column:quando_consumir"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
}

func (produtoRecord) TableName() string { return "produtos" }

// Session schema mirrors the auth Postgres session store.
type sessionRecord struct {
	TokenID   string     `gorm:"primaryKey;column:token_id;size:64"`
	UsuarioID int64      `gorm:"column:usuario_id;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "usuario_sessions" }

// Receipt schema mirrors the pets Postgres creation receipts.
type receiptRecord struct {
	Key         string    `gorm:"primaryKey;column:idempotency_key;size:255"`
	Fingerprint string    `gorm:"column:fingerprint;size:64;not null"`
	PetID       int64     `gorm:"column:pet_id;not null"`
	IssuedAt    time.Time `gorm:"column:issued_at;not null;index"`
}

func (receiptRecord) TableName() string { return "pet_creation_receipts" }
