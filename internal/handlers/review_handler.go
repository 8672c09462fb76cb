package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	ucReview "github.com/BruksfildServices01/barbearia-web/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucReview.CreateReview
}

func NewReviewHandler(create *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{create: create}
}

type CreateReviewRequest struct {
	BookingID  int64  `json:"id_booking" binding:"required,gt=0"`
	Target     string `json:"target" binding:"required,oneof=barbeiro barbearia"`
	Rating     int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comentario string `json:"comentario" binding:"max=1000"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.create.Execute(c.Request.Context(), sess, models.Review{
		BookingID:  req.BookingID,
		Target:     req.Target,
		Rating:     req.Rating,
		Comentario: req.Comentario,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
