package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"race_timing/internal/api"
	"race_timing/internal/app/service"
	"race_timing/internal/common/security"
	"race_timing/internal/domain/repository"
	"race_timing/internal/platform/cache"
	"race_timing/internal/platform/config"
	"race_timing/internal/platform/database"
	"race_timing/internal/platform/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	issuer := security.NewTokenIssuer(cfg.JWTKey, cfg.TokenTTL)

	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()
	logger.Info().Msg("database connected")

	// Schema registration fails fast: a partially applied schema must not
	// serve traffic.
	if err := database.Migrate(db, cfg.DBName); err != nil {
		logger.Fatal().Err(err).Msg("schema migration failed")
	}
	logger.Info().Msg("schema up to date")

	redisClient, err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		// The cache is an optimization; run without it rather than refuse to start.
		logger.Warn().Err(err).Msg("redis unavailable, running without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		logger.Info().Msg("redis connected")
	}

	userRepo := repository.NewPgUserRepository(db)
	categoryRepo := repository.NewPgCategoryRepository(db)
	teamRepo := repository.NewPgTeamRepository(db)
	eventRepo := repository.NewPgEventRepository(db)
	competitorRepo := repository.NewPgCompetitorRepository(db)
	checkpointRepo := repository.NewPgCheckpointRepository(db)
	timeRepo := repository.NewPgTimeRepository(db)

	services := api.Services{
		Auth:       service.NewAuthService(userRepo, issuer),
		User:       service.NewUserService(userRepo),
		Category:   service.NewCategoryService(categoryRepo),
		Team:       service.NewTeamService(teamRepo),
		Event:      service.NewEventService(eventRepo),
		Competitor: service.NewCompetitorService(competitorRepo),
		Checkpoint: service.NewCheckpointService(checkpointRepo),
		Time:       service.NewTimeService(timeRepo, redisClient, cfg.CacheTTL),
	}

	router := api.NewRouter(issuer, services, cfg.BaseURL)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-stop

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped gracefully")
}
