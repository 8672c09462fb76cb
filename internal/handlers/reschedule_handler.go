package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barbearia-web/internal/usecase/appointment"
)

type RescheduleHandler struct {
	list    *ucAppointment.ListReschedules
	resolve *ucAppointment.ResolveReschedule
}

func NewRescheduleHandler(list *ucAppointment.ListReschedules, resolve *ucAppointment.ResolveReschedule) *RescheduleHandler {
	return &RescheduleHandler{list: list, resolve: resolve}
}

// List aceita ?pending=true para só os pedidos em aberto
func (h *RescheduleHandler) List(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	reqs, err := h.list.Execute(c.Request.Context(), sess, c.Query("pending") == "true")
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, reqs)
}

func (h *RescheduleHandler) Approve(c *gin.Context) { h.run(c, true) }
func (h *RescheduleHandler) Reject(c *gin.Context) { h.run(c, false) }

func (h *RescheduleHandler) run(c *gin.Context, approve bool) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	reqs, err := h.resolve.Execute(c.Request.Context(), sess, id, approve)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, reqs)
}
