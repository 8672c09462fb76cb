package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barbearia-web/internal/audit"
	"github.com/BruksfildServices01/barbearia-web/internal/bookingapi"
	"github.com/BruksfildServices01/barbearia-web/internal/config"
	dbpkg "github.com/BruksfildServices01/barbearia-web/internal/db"
	"github.com/BruksfildServices01/barbearia-web/internal/logger"
	"github.com/BruksfildServices01/barbearia-web/internal/metrics"
	"github.com/BruksfildServices01/barbearia-web/internal/middleware"
	"github.com/BruksfildServices01/barbearia-web/internal/routes"
	"github.com/BruksfildServices01/barbearia-web/internal/session"
	"github.com/BruksfildServices01/barbearia-web/internal/timezone"
	"github.com/BruksfildServices01/barbearia-web/internal/validators"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		LogFile:     cfg.LogFile,
	}); err != nil {
		log.Fatal().Err(err).Msg("failed to init logger")
	}

	if err := validators.RegisterBindings(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	// ======================================================
	// INFRA
	// ======================================================
	rdb, err := dbpkg.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer rdb.Close()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("audit database unavailable")
	}
	defer dbpkg.Close(db)

	var dispatcher *audit.Dispatcher
	if db != nil {
		dispatcher = audit.NewDispatcher(audit.New(db))
	} else {
		log.Warn().Msg("DATABASE_URL not set, audit trail disabled")
	}

	loc, err := timezone.Load(cfg.ShopTimezone)
	if err != nil {
		log.Warn().Err(err).Str("fallback", timezone.DefaultTimezone).Msg("invalid shop timezone")
		loc = timezone.Location(timezone.DefaultTimezone)
	}

	m := metrics.New(nil)
	api := bookingapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, bookingapi.WithObserver(m))
	sessions := session.NewManager(session.NewRedisStore(rdb), api, cfg.SessionTTL)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(m),
		gin.Recovery(),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
	)

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		API:      api,
		Sessions: sessions,
		DB:       db,
		Audit:    dispatcher,
		Location: loc,
		Clock:    timezone.Clock(loc),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("api", cfg.APIBaseURL).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// ======================================================
	// SHUTDOWN
	// ======================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	dispatcher.Close()
}
