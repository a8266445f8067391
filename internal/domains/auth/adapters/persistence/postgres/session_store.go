package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

// SessionStore persists sessions in PostgreSQL.
type SessionStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionStore wires a PostgreSQL-backed session store. Caller owns DB lifecycle.
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db, now: time.Now}
}

type sessionRecord struct {
	TokenID   string     `gorm:"primaryKey;column:token_id;size:64"`
	UsuarioID int64      `gorm:"column:usuario_id;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

func (sessionRecord) TableName() string { return "usuario_sessions" }

// Save upserts a session keyed by token id.
func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	checked, err := domain.NewSession(session.TokenID, session.UsuarioID, session.ExpiresAt)
	if err != nil {
		return err
	}
	rec := sessionRecord{TokenID: checked.TokenID, UsuarioID: checked.UsuarioID}
	if !checked.ExpiresAt.IsZero() {
		rec.ExpiresAt = &checked.ExpiresAt
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"usuario_id", "expires_at", "updated_at"}),
		}).
		Create(&rec).Error
}

// Get returns a live session; expired rows count as missing.
func (s *SessionStore) Get(ctx context.Context, tokenID string) (*domain.Session, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil, ports.ErrSessionNotFound
	}
	var rec sessionRecord
	err := s.db.WithContext(ctx).
		Where("token_id = ? AND (expires_at IS NULL OR expires_at > ?)", tokenID, s.now().UTC()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	session := domain.Session{TokenID: rec.TokenID, UsuarioID: rec.UsuarioID}
	if rec.ExpiresAt != nil {
		session.ExpiresAt = rec.ExpiresAt.UTC()
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return nil
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "token_id = ?", tokenID).Error
}

// DeleteByUsuario revokes every session of a usuario.
func (s *SessionStore) DeleteByUsuario(ctx context.Context, usuarioID int64) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&sessionRecord{}, "usuario_id = ?", usuarioID).Error
}

// PurgeExpired removes expired sessions and reports how many were dropped.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	if err := s.ensureDB(); err != nil {
		return 0, err
	}
	result := s.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", s.now().UTC()).
		Delete(&sessionRecord{})
	return result.RowsAffected, result.Error
}

func (s *SessionStore) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres session store not configured")
	}
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
