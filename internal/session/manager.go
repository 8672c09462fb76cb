package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barbearia-web/internal/bookingapi"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
)

// Authenticator é a parte da API remota usada pelo ciclo de vida da sessão
type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context, token string) (*models.User, error)
}

type Manager struct {
	store Store
	auth  Authenticator
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store Store, auth Authenticator, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		auth:  auth,
		ttl:   ttl,
		now:   time.Now,
	}
}

// ======================================================
// Init
// ======================================================

func (m *Manager) Login(ctx context.Context, email, senha string) (*Session, error) {
	resp, err := m.auth.Login(ctx, models.LoginRequest{Email: email, Senha: senha})
	if err != nil {
		return nil, err
	}
	return m.create(ctx, resp)
}

// Register cria a conta na API e já abre a sessão
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (*Session, error) {
	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return m.Login(ctx, req.Email, req.Senha)
	}
	return m.create(ctx, resp)
}

func (m *Manager) create(ctx context.Context, resp *models.AuthResponse) (*Session, error) {
	now := m.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Token:     resp.Token,
		User:      resp.User,
		CreatedAt: now,
		ExpiresAt: m.expiry(resp.Token, now),
	}
	if !sess.ExpiresAt.After(now) {
		return nil, ErrExpired
	}

	if err := m.store.Save(ctx, sess, sess.ExpiresAt.Sub(now)); err != nil {
		return nil, err
	}
	return sess, nil
}

// expiry usa o menor entre o TTL configurado e o exp do token
func (m *Manager) expiry(token string, now time.Time) time.Time {
	exp := now.Add(m.ttl)
	if tokenExp, ok := tokenExpiry(token); ok && tokenExp.Before(exp) {
		return tokenExp
	}
	return exp
}

// tokenExpiry lê o exp do JWT sem verificar a assinatura: a chave é da API
// remota e aqui só interessa descartar cedo um token vencido.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ======================================================
// Restore / Validate
// ======================================================

// Restore carrega a sessão sem chamar a API remota
func (m *Manager) Restore(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	sess, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	if !m.now().Before(sess.ExpiresAt) {
		m.destroy(ctx, id)
		return nil, ErrExpired
	}
	return sess, nil
}

// Validate confirma a sessão com a API (/auth/me) e atualiza o usuário.
// Falha de autenticação destrói a sessão; outras falhas só são devolvidas.
func (m *Manager) Validate(ctx context.Context, id string) (*Session, error) {
	sess, err := m.Restore(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := m.auth.Me(ctx, sess.Token)
	if err != nil {
		if bookingapi.IsKind(err, bookingapi.KindAuth) {
			m.destroy(ctx, id)
			return nil, ErrExpired
		}
		return nil, err
	}

	remaining := sess.ExpiresAt.Sub(m.now())
	if remaining <= 0 {
		m.destroy(ctx, id)
		return nil, ErrExpired
	}

	sess.User = *user
	if err := m.store.Save(ctx, sess, remaining); err != nil {
		return nil, err
	}
	return sess, nil
}

// ======================================================
// Teardown
// ======================================================

// Logout apaga a sessão; limpar o cookie fica com o handler
func (m *Manager) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

func (m *Manager) destroy(ctx context.Context, id string) {
	if err := m.store.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to delete session")
	}
}
