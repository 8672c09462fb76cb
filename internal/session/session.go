package session

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

var (
	ErrNotFound = errors.New("session: not found")
	ErrExpired  = errors.New("session: expired")
)

// Session é o estado de autenticação de um usuário do BFF.
// É passado explicitamente para cada caso de uso.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// BarbeariaID devolve a barbearia do usuário, se houver
func (s *Session) BarbeariaID() (int64, bool) {
	if s == nil || s.User.BarbeariaID == nil {
		return 0, false
	}
	return *s.User.BarbeariaID, true
}

type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
