package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/middleware"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
	"github.com/BruksfildServices01/barbearia-web/internal/validators"
)

type AuthHandler struct {
	manager      *session.Manager
	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(manager *session.Manager, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		manager:      manager,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Nome     string `json:"nome" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Senha    string `json:"senha" binding:"required,min=6"`
	Telefone string `json:"telefone" binding:"omitempty,br_phone"`
	Role     string `json:"role" binding:"omitempty,oneof=cliente dono"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// --------- Responses ---------

type SessionResponse struct {
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func sessionResponse(sess *session.Session) SessionResponse {
	user := sess.User
	user.Telefone = validators.FormatPhoneBR(user.Telefone)
	return SessionResponse{User: user, ExpiresAt: sess.ExpiresAt}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	phone, _ := validators.NormalizePhoneToDigits(req.Telefone)

	sess, err := h.manager.Register(c.Request.Context(), models.RegisterRequest{
		Nome:     strings.TrimSpace(req.Nome),
		Email:    validators.NormalizeEmail(req.Email),
		Senha:    req.Senha,
		Telefone: phone,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cookieName, sess, h.cookieSecure)
	c.JSON(http.StatusCreated, sessionResponse(sess))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.manager.Login(c.Request.Context(), validators.NormalizeEmail(req.Email), req.Senha)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	middleware.SetSessionCookie(c, h.cookieName, sess, h.cookieSecure)
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// Logout é idempotente: sem sessão também responde 204
func (h *AuthHandler) Logout(c *gin.Context) {
	if id := middleware.SessionID(c, h.cookieName); id != "" {
		if err := h.manager.Logout(c.Request.Context(), id); err != nil {
			httperr.Respond(c, err)
			return
		}
	}

	middleware.ClearSessionCookie(c, h.cookieName)
	c.Status(http.StatusNoContent)
}

// Session revalida a sessão na API e devolve o usuário atualizado
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	fresh, err := h.manager.Validate(c.Request.Context(), sess.ID)
	if err != nil {
		if errors.Is(err, session.ErrExpired) || errors.Is(err, session.ErrNotFound) {
			middleware.ClearSessionCookie(c, h.cookieName)
			httperr.Unauthorized(c, "session_expired", "Sessão expirada. Faça login novamente.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse(fresh))
}
