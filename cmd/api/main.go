package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medidash/clinic-api/internal/config"
	analyticsHandler "github.com/medidash/clinic-api/internal/handler/analytics"
	appointmentHandler "github.com/medidash/clinic-api/internal/handler/appointment"
	authHandler "github.com/medidash/clinic-api/internal/handler/auth"
	healthHandler "github.com/medidash/clinic-api/internal/handler/health"
	medicineHandler "github.com/medidash/clinic-api/internal/handler/medicine"
	patientHandler "github.com/medidash/clinic-api/internal/handler/patient"
	reportHandler "github.com/medidash/clinic-api/internal/handler/report"
	"github.com/medidash/clinic-api/internal/middleware"
	"github.com/medidash/clinic-api/internal/repository/kvstore"
	"github.com/medidash/clinic-api/internal/router"
	analyticsService "github.com/medidash/clinic-api/internal/service/analytics"
	appointmentService "github.com/medidash/clinic-api/internal/service/appointment"
	medicineService "github.com/medidash/clinic-api/internal/service/medicine"
	patientService "github.com/medidash/clinic-api/internal/service/patient"
	reportService "github.com/medidash/clinic-api/internal/service/report"
	sessionService "github.com/medidash/clinic-api/internal/service/session"
	"github.com/medidash/clinic-api/internal/store"
	"github.com/medidash/clinic-api/pkg/auth"
	"github.com/medidash/clinic-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
	})
	log.Logger = appLogger.Zerolog()

	// Initialize the local store
	kv, err := store.New(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}

	// Initialize repositories
	patientRepo := kvstore.NewPatientRepository(kv)
	appointmentRepo := kvstore.NewAppointmentRepository(kv, patientRepo)
	medicineRepo := kvstore.NewMedicineRepository(kv)
	sessionRepo := kvstore.NewSessionRepository(kv)

	// Initialize services
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authenticator := sessionService.NewHTTPAuthenticator(cfg.Auth.LoginURL)
	sessionSvc := sessionService.NewService(sessionRepo, authenticator, tokens, cfg.Auth)
	patientSvc := patientService.NewService(patientRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	medicineSvc := medicineService.NewService(medicineRepo)
	analyticsSvc := analyticsService.NewService(
		patientRepo, appointmentRepo, medicineRepo,
		cfg.Dashboard.LowStockThreshold, cfg.Dashboard.TodayListCap,
	)
	reportSvc := reportService.NewService(patientRepo, appointmentRepo)

	// Initialize middleware and handlers
	sessionMw := middleware.NewSessionMiddleware(tokens, sessionSvc)
	gated := []router.Handler{
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		medicineHandler.NewHandler(medicineSvc),
		analyticsHandler.NewHandler(analyticsSvc),
		reportHandler.NewHandler(reportSvc),
	}

	r := router.NewRouter(
		sessionMw,
		authHandler.NewHandler(sessionSvc),
		healthHandler.NewHandler(kv),
		gated,
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RPS,
			RateLimitBurst:   cfg.RateLimit.Burst,
			CORS:             middleware.DefaultCORSConfig(),
		},
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
