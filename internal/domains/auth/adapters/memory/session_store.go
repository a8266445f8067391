package memory

import (
	"context"
	"sync"
	"time"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore keeps sessions in process memory. Expired entries are dropped on read.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]domain.Session{}, now: time.Now}
}

func (s *SessionStore) Save(_ context.Context, session domain.Session) error {
	checked, err := domain.NewSession(session.TokenID, session.UsuarioID, session.ExpiresAt)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[checked.TokenID] = checked
	return nil
}

func (s *SessionStore) Get(_ context.Context, tokenID string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[tokenID]
	s.mu.RUnlock()
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, tokenID)
		s.mu.Unlock()
		return nil, ports.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
	return nil
}

func (s *SessionStore) DeleteByUsuario(_ context.Context, usuarioID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		if session.UsuarioID == usuarioID {
			delete(s.sessions, id)
		}
	}
	return nil
}
