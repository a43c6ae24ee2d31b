package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conferencecentral/config"
	"conferencecentral/internal/adapters/auth"
	"conferencecentral/internal/adapters/cache"
	"conferencecentral/internal/adapters/email"
	"conferencecentral/internal/adapters/tasks"
	delivery "conferencecentral/internal/delivery/http"
	"conferencecentral/internal/delivery/http/controllers"
	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/repository/postgres"
	"conferencecentral/internal/services"
	"conferencecentral/internal/worker"
)

// @title Conference Central API
// @version 1.0
// @description Backend for organizing conferences, sessions, and attendee registration.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	queue, err := tasks.NewClient(cfg.RabbitURL, cfg.RabbitExchange, cfg.RabbitQueue, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "err", err)
		os.Exit(1)
	}
	defer queue.Close()

	mailer, err := email.NewMailer(cfg.Mailer, logger)
	if err != nil {
		logger.Error("failed to configure mailer", "err", err)
		os.Exit(1)
	}

	stringCache := cache.NewMemoryStringCache()
	tokens := auth.NewJWTProvider(cfg.JWTSecret)

	profileRepo := postgres.NewProfileRepository(db)
	conferenceRepo := postgres.NewConferenceRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	speakerRepo := postgres.NewSpeakerRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	wishlistRepo := postgres.NewWishlistRepository(db)

	profileService := services.NewProfileService(profileRepo)
	conferenceService := services.NewConferenceService(conferenceRepo, registrationRepo, profileRepo, stringCache, queue, logger)
	sessionService := services.NewSessionService(sessionRepo, conferenceRepo, profileRepo, stringCache, queue, logger)
	registrationService := services.NewRegistrationService(registrationRepo, profileRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, sessionRepo, profileRepo)
	speakerService := services.NewSpeakerService(speakerRepo)
	emailService := services.NewEmailService(mailer, logger)

	taskWorker := worker.New(queue, conferenceService, sessionService, emailService, logger)
	if err := taskWorker.Start(ctx); err != nil {
		logger.Error("failed to start task worker", "err", err)
		os.Exit(1)
	}
	defer taskWorker.Stop()

	// Periodically refresh the announcement through the task queue so a
	// single worker performs the recompute.
	go func() {
		ticker := time.NewTicker(cfg.AnnouncementInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := queue.Enqueue(ctx, domain.TaskSetAnnouncement, nil); err != nil {
					logger.Warn("failed to enqueue announcement task", "err", err)
				}
			}
		}
	}()

	mux := delivery.NewRouter(
		tokens,
		logger,
		controllers.NewProfileController(logger, profileService),
		controllers.NewConferenceController(logger, conferenceService, registrationService),
		controllers.NewSessionController(logger, sessionService, wishlistService),
		controllers.NewSpeakerController(logger, speakerService),
	)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		logger.Error("server error", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	logger.Info("shutdown complete")
}
