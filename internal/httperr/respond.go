package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/bookingapi"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
)

// ======================================================
// Business codes
// ======================================================

type businessInfo struct {
	status  int
	message string
}

var businessCodes = map[string]businessInfo{
	"invalid_state":      {http.StatusConflict, "Esta ação não é permitida no status atual do agendamento."},
	"action_not_allowed": {http.StatusForbidden, "Você não tem permissão para esta ação."},
	"unknown_status":     {http.StatusConflict, "Status de agendamento desconhecido."},
	"window_closed":      {http.StatusConflict, "O prazo para esta ação já expirou."},
	"booking_not_found":  {http.StatusNotFound, "Agendamento não encontrado."},
	"no_barbershop":      {http.StatusForbidden, "Usuário sem barbearia vinculada."},
	"invalid_target":     {http.StatusUnprocessableEntity, "Alvo de avaliação inválido."},
}

// ======================================================
// Respond
// ======================================================

// Respond escreve a resposta de erro adequada para err
func Respond(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		Validation(c, verr.Message, verr.Details)
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		info, ok := businessCodes[be.Code]
		if !ok {
			info = businessInfo{http.StatusBadRequest, "Operação inválida."}
		}
		Write(c, info.status, be.Code, info.message)
		return
	}

	if apiErr, ok := bookingapi.AsAPIError(err); ok {
		Write(c, StatusForAPIError(apiErr), "api_"+string(apiErr.Kind), apiErr.Message)
		return
	}

	logger.FromContext(c.Request.Context()).Error().Err(err).Msg("unhandled error")
	Internal(c, "internal_error", "Erro interno.")
}

// StatusForAPIError: validação repassa o 4xx remoto, auth vira 401,
// rede e servidor viram 502, o resto 500
func StatusForAPIError(e *bookingapi.APIError) int {
	switch e.Kind {
	case bookingapi.KindValidation:
		if e.Status >= 400 && e.Status < 500 {
			return e.Status
		}
		return http.StatusBadRequest
	case bookingapi.KindAuth:
		return http.StatusUnauthorized
	case bookingapi.KindNetwork, bookingapi.KindServer:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
