package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reel-backend/internal/config"
	"reel-backend/internal/database"
	"reel-backend/internal/draft"
	"reel-backend/internal/handlers"
	"reel-backend/internal/logging"
	"reel-backend/internal/mailer"
	"reel-backend/internal/notify"
	"reel-backend/internal/repository"
	"reel-backend/internal/server"
	"reel-backend/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("❌ Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("❌ Invalid configuration", zap.Error(err))
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI, cfg.DBName); err != nil {
		logger.Fatal("❌ Failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("✅ Connected to MongoDB", zap.String("db", cfg.DBName))

	// Initialize repositories
	profileRepo := repository.NewProfileRepo()
	legacyRepo := repository.NewLegacyUserRepo()
	identityRepo := repository.NewIdentityRepo()
	tokenRepo := repository.NewAuthTokenRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := profileRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("⚠️  failed to create profile indexes", zap.Error(err))
	}
	if err := identityRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("⚠️  failed to create identity indexes", zap.Error(err))
	}
	if err := tokenRepo.EnsureIndexes(ctx); err != nil {
		logger.Warn("⚠️  failed to create token indexes", zap.Error(err))
	}

	generator, err := draft.New(context.Background(), draft.Config{
		Strategy:     cfg.DraftStrategy,
		GeminiAPIKey: cfg.GeminiAPIKey,
		GeminiModel:  cfg.GeminiModel,
	})
	if err != nil {
		logger.Fatal("❌ Failed to initialize draft generator", zap.Error(err))
	}
	logger.Info("draft generator ready", zap.String("strategy", cfg.DraftStrategy))

	notifier := notify.NewLogNotifier(logger, cfg.ExtensionID)
	m := mailer.NewResendMailer(cfg.ResendKey, cfg.FromEmail, logger)

	profileService := service.NewProfileService(profileRepo, legacyRepo, identityRepo, notifier, logger)

	router := server.NewRouter(server.Handlers{
		Auth:    handlers.NewAuthHandler(tokenRepo, identityRepo, m, cfg.JWTSecret, cfg.AppURL, logger),
		Profile: handlers.NewProfileHandler(profileService, logger),
		User:    handlers.NewUserHandler(profileService, logger),
		Draft:   handlers.NewDraftHandler(generator, cfg.DraftTimeout, logger),
	}, cfg.JWTSecret, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.DraftTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("🚀 Reel backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Error("disconnecting from MongoDB", zap.Error(err))
	}
	logger.Info("server stopped")
}
