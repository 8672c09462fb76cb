package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
)

const (
	ContextSession      = "session"
	ContextUserID       = "userID"
	ContextBarbershopID = "barbershopID"
	ContextUserRole     = "userRole"
)

// SessionAuth exige uma sessão válida vinda do cookie ou de
// "Authorization: Bearer <session id>". Não chama a API remota.
func SessionAuth(manager *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionID(c, cookieName)
		if id == "" {
			c.Abort()
			httperr.Unauthorized(c, "missing_session", "Faça login para continuar.")
			return
		}

		sess, err := manager.Restore(c.Request.Context(), id)
		if err != nil {
			c.Abort()
			switch {
			case errors.Is(err, session.ErrNotFound):
				httperr.Unauthorized(c, "invalid_session", "Sessão inválida. Faça login novamente.")
			case errors.Is(err, session.ErrExpired):
				ClearSessionCookie(c, cookieName)
				httperr.Unauthorized(c, "session_expired", "Sessão expirada. Faça login novamente.")
			default:
				logger.FromContext(c.Request.Context()).Error().Err(err).Msg("session restore failed")
				httperr.Write(c, http.StatusServiceUnavailable, "session_unavailable", "Não foi possível carregar a sessão.")
			}
			return
		}

		c.Set(ContextSession, sess)
		c.Set(ContextUserID, sess.User.ID)
		c.Set(ContextUserRole, sess.User.Role)
		if shopID, ok := sess.BarbeariaID(); ok {
			c.Set(ContextBarbershopID, shopID)
		}

		c.Next()
	}
}

// SessionID lê o id da sessão do cookie ou do header Authorization
func SessionID(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// CurrentSession devolve a sessão colocada por SessionAuth
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(ContextSession); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

func SetSessionCookie(c *gin.Context, name string, sess *session.Session, secure bool) {
	maxAge := int(sess.ExpiresAt.Sub(sess.CreatedAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, sess.ID, maxAge, "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", false, true)
}
