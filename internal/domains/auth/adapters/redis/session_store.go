// Package redis stores sessions in Redis with native key expiry.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/petcare/petcare-api/internal/domains/auth/domain"
	"github.com/petcare/petcare-api/internal/domains/auth/ports"
)

const (
	sessionPrefix = "petcare:session:"
	usuarioPrefix = "petcare:usuario-sessions:"
)

// SessionStore keeps one key per token plus a set of token ids per usuario.
type SessionStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

func NewSessionStore(client goredis.UniversalClient) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

type payload struct {
	UsuarioID int64     `json:"usuarioId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session) error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	checked, err := domain.NewSession(session.TokenID, session.UsuarioID, session.ExpiresAt)
	if err != nil {
		return err
	}
	var ttl time.Duration
	if !checked.ExpiresAt.IsZero() {
		ttl = checked.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}
	raw, err := json.Marshal(payload{UsuarioID: checked.UsuarioID, ExpiresAt: checked.ExpiresAt})
	if err != nil {
		return err
	}
	setKey := usuarioKey(checked.UsuarioID)
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(checked.TokenID), raw, ttl)
		pipe.SAdd(ctx, setKey, checked.TokenID)
		if ttl > 0 {
			pipe.Expire(ctx, setKey, ttl)
		}
		return nil
	})
	return err
}

func (s *SessionStore) Get(ctx context.Context, tokenID string) (*domain.Session, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("redis session store not configured")
	}
	raw, err := s.client.Get(ctx, sessionKey(tokenID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", tokenID, err)
	}
	session := domain.Session{TokenID: tokenID, UsuarioID: p.UsuarioID, ExpiresAt: p.ExpiresAt}
	if session.Expired(s.now()) {
		return nil, ports.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	session, err := s.Get(ctx, tokenID)
	if errors.Is(err, ports.ErrSessionNotFound) {
		return s.client.Del(ctx, sessionKey(tokenID)).Err()
	}
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, sessionKey(tokenID))
		pipe.SRem(ctx, usuarioKey(session.UsuarioID), tokenID)
		return nil
	})
	return err
}

func (s *SessionStore) DeleteByUsuario(ctx context.Context, usuarioID int64) error {
	if s == nil || s.client == nil {
		return errors.New("redis session store not configured")
	}
	setKey := usuarioKey(usuarioID)
	tokens, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKey(token))
	}
	keys = append(keys, setKey)
	return s.client.Del(ctx, keys...).Err()
}

func sessionKey(tokenID string) string { return sessionPrefix + tokenID }

func usuarioKey(usuarioID int64) string { return usuarioPrefix + strconv.FormatInt(usuarioID, 10) }

var _ ports.SessionStore = (*SessionStore)(nil)
