package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/middleware"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
	"github.com/BruksfildServices01/barbearia-web/internal/validators"
)

// --------------------------------------------------
// Helpers comuns aos handlers
// --------------------------------------------------

// currentSession escreve 401 quando a rota não passou por SessionAuth
func currentSession(c *gin.Context) (*session.Session, bool) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		httperr.Unauthorized(c, "missing_session", "Faça login para continuar.")
		return nil, false
	}
	return sess, true
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return id, true
}

// bindJSON: erro de validação vira 422 por campo, JSON malformado vira 400
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if fields := validators.FieldErrors(err); fields != nil {
			httperr.Validation(c, "Verifique os campos informados.", fields)
			return false
		}
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return false
	}
	return true
}
