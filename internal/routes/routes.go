package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	"github.com/BruksfildServices01/barbearia-web/internal/bookingapi"
	"github.com/BruksfildServices01/barbearia-web/internal/config"
	"github.com/BruksfildServices01/barbearia-web/internal/handlers"
	"github.com/BruksfildServices01/barbearia-web/internal/middleware"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
	ucAppointment "github.com/BruksfildServices01/barbearia-web/internal/usecase/appointment"
	ucReview "github.com/BruksfildServices01/barbearia-web/internal/usecase/review"
	ucConfig "github.com/BruksfildServices01/barbearia-web/internal/usecase/shopconfig"
)

// Deps são os singletons montados em main
type Deps struct {
	Config   *config.Config
	API      *bookingapi.Client
	Sessions *session.Manager
	DB       *gorm.DB
	Audit    *audit.Dispatcher
	Gatherer prometheus.Gatherer
	Location *time.Location
	Clock    func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	now := ucAppointment.Clock(d.Clock)
	if now == nil {
		now = time.Now
	}

	// ======================================================
	// USE CASES: BOOKINGS
	// ======================================================
	listBookingsUC := ucAppointment.NewListBookings(d.API)
	createBookingUC := ucAppointment.NewCreateBooking(d.API, d.Audit, now)
	transitionUC := ucAppointment.NewTransitionBooking(d.API, d.Audit, listBookingsUC, now)
	removeUC := ucAppointment.NewRemoveBooking(d.API, d.Audit, listBookingsUC)

	requestRescheduleUC := ucAppointment.NewRequestReschedule(d.API, d.Audit, now)
	listReschedulesUC := ucAppointment.NewListReschedules(d.API)
	resolveRescheduleUC := ucAppointment.NewResolveReschedule(d.API, d.Audit, listReschedulesUC)

	// ======================================================
	// USE CASES: CONFIG / REVIEWS
	// ======================================================
	getConfigUC := ucConfig.NewGetConfig(d.API)
	saveConfigUC := ucConfig.NewSaveConfig(d.API, d.Audit, getConfigUC)

	listReviewsUC := ucReview.NewListReviews(d.API)
	ratingsUC := ucReview.NewBarberRatings(d.API, cfg.RatingsConcurrency)
	createReviewUC := ucReview.NewCreateReview(d.API, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Sessions, cfg.SessionCookieName, cfg.SessionCookieSecure)
	catalogHandler := handlers.NewCatalogHandler(d.API, listReviewsUC, ratingsUC)
	configHandler := handlers.NewConfigHandler(getConfigUC, saveConfigUC)
	bookingHandler := handlers.NewBookingHandler(
		listBookingsUC,
		createBookingUC,
		transitionUC,
		removeUC,
		requestRescheduleUC,
	)
	rescheduleHandler := handlers.NewRescheduleHandler(listReschedulesUC, resolveRescheduleUC)
	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Location)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.SessionAuth(d.Sessions, cfg.SessionCookieName))
		{
			secured.GET("/session", authHandler.Session)

			// catálogo
			secured.GET("/barbearias", catalogHandler.ListBarbershops)
			secured.GET("/barbearias/:id", catalogHandler.GetBarbershop)
			secured.GET("/barbearias/:id/servicos", catalogHandler.ListServices)
			secured.GET("/barbearias/:id/barbeiros", catalogHandler.ListBarbers)
			secured.GET("/barbearias/:id/avaliacoes", catalogHandler.BarbershopReviews)
			secured.GET("/barbearias/:id/ratings", catalogHandler.Ratings)
			secured.GET("/barbeiros/:id/avaliacoes", catalogHandler.BarberReviews)

			// configuração da barbearia
			secured.GET("/me/config", configHandler.Get)
			secured.PATCH("/me/config", configHandler.Update)

			secured.POST("/validate/business-hours", handlers.ValidateBusinessHours)
			secured.POST("/validate/phone", handlers.ValidatePhone)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/finalize", bookingHandler.Finalize)
			secured.DELETE("/bookings/:id", bookingHandler.Remove)
			secured.POST("/bookings/:id/reschedule", bookingHandler.Reschedule)

			secured.GET("/reschedules", rescheduleHandler.List)
			secured.PATCH("/reschedules/:id/approve", rescheduleHandler.Approve)
			secured.PATCH("/reschedules/:id/reject", rescheduleHandler.Reject)

			secured.POST("/reviews", reviewHandler.Create)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
