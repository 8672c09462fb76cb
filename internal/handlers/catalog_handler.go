package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-web/internal/httperr"
	"github.com/BruksfildServices01/barbearia-web/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-web/internal/models"
	ucReview "github.com/BruksfildServices01/barbearia-web/internal/usecase/review"
)

// CatalogAPI é a parte do catálogo remoto exposta sem regra local
type CatalogAPI interface {
	ListBarbershops(ctx context.Context, token string) ([]models.Barbearia, error)
	GetBarbershop(ctx context.Context, token string, id int64) (*models.Barbearia, error)
	ListServices(ctx context.Context, token string, shopID int64) ([]models.Servico, error)
	ListBarbers(ctx context.Context, token string, shopID int64) ([]models.Barbeiro, error)
}

type CatalogHandler struct {
	api     CatalogAPI
	reviews *ucReview.ListReviews
	ratings *ucReview.BarberRatings
}

func NewCatalogHandler(
	api CatalogAPI,
	reviews *ucReview.ListReviews,
	ratings *ucReview.BarberRatings,
) *CatalogHandler {
	return &CatalogHandler{
		api:     api,
		reviews: reviews,
		ratings: ratings,
	}
}

func (h *CatalogHandler) ListBarbershops(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	shops, err := h.api.ListBarbershops(c.Request.Context(), sess.Token)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, shops)
}

func (h *CatalogHandler) GetBarbershop(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.api.GetBarbershop(c.Request.Context(), sess.Token, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, shop)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	services, err := h.api.ListServices(c.Request.Context(), sess.Token, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	barbers, err := h.api.ListBarbers(c.Request.Context(), sess.Token, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, barbers)
}

// --------------------------------------------------
// Avaliações
// --------------------------------------------------

func (h *CatalogHandler) BarbershopReviews(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.reviews.ByBarbershop(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, summary)
}

func (h *CatalogHandler) BarberReviews(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.reviews.ByBarber(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, summary)
}

// Ratings nunca falha por um barbeiro; só a lista de barbeiros é obrigatória
func (h *CatalogHandler) Ratings(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ratings, err := h.ratings.Execute(c.Request.Context(), sess, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, ratings)
}
