package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-web/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbearia-web/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list       *ucAppointment.ListBookings
	create     *ucAppointment.CreateBooking
	transition *ucAppointment.TransitionBooking
	remove     *ucAppointment.RemoveBooking
	reschedule *ucAppointment.RequestReschedule
}

func NewBookingHandler(
	list *ucAppointment.ListBookings,
	create *ucAppointment.CreateBooking,
	transition *ucAppointment.TransitionBooking,
	remove *ucAppointment.RemoveBooking,
	reschedule *ucAppointment.RequestReschedule,
) *BookingHandler {
	return &BookingHandler{
		list:       list,
		create:     create,
		transition: transition,
		remove:     remove,
		reschedule: reschedule,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarbeariaID int64   `json:"id_barbearia" binding:"required,gt=0"`
	ServicoIDs  []int64 `json:"servicos" binding:"required,min=1,dive,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	BarberID    int64   `json:"barber_id" binding:"omitempty,gt=0"`
	Notes       string  `json:"notes" binding:"max=500"`
}

type RescheduleBookingRequest struct {
	TargetDate     string `json:"target_date" binding:"required"`
	TargetTime     string `json:"target_time" binding:"required"`
	TargetBarberID *int64 `json:"target_barber_id" binding:"omitempty,gt=0"`
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	filter := models.BookingFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}
	if v := c.Query("id_barbearia"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			httperr.BadRequest(c, "invalid_filter", "Filtro de barbearia inválido.")
			return
		}
		filter.BarbeariaID = id
	}

	out, err := h.list.Execute(c.Request.Context(), sess, filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.create.Execute(c.Request.Context(), sess, models.BookingRequest{
		BarbeariaID: req.BarbeariaID,
		ServicoIDs:  req.ServicoIDs,
		Date:        req.Date,
		Time:        req.Time,
		BarberID:    req.BarberID,
		Notes:       req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) { h.runTransition(c, domain.ActionConfirm) }
func (h *BookingHandler) Cancel(c *gin.Context) { h.runTransition(c, domain.ActionCancel) }
func (h *BookingHandler) Finalize(c *gin.Context) { h.runTransition(c, domain.ActionFinalize) }

func (h *BookingHandler) runTransition(c *gin.Context, action domain.Action) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.transition.Execute(c.Request.Context(), sess, id, action)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) Remove(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	out, err := h.remove.Execute(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *BookingHandler) Reschedule(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req RescheduleBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.reschedule.Execute(c.Request.Context(), sess, id, models.RescheduleInput{
		TargetDate:     req.TargetDate,
		TargetTime:     req.TargetTime,
		TargetBarberID: req.TargetBarberID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
