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
	"github.com/iamasit07/connect4-obstacles/internal/config"
	"github.com/iamasit07/connect4-obstacles/internal/repository/postgres"
	"github.com/iamasit07/connect4-obstacles/internal/service/cleanup"
	transportHttp "github.com/iamasit07/connect4-obstacles/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Serves the stored game results over HTTP. Needs DATABASE_URL.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg := config.LoadConfig()
	config.SetupLogger(cfg.LogLevel)
	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required for the results API")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnMaxLifetimeMin)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer db.Close()

	gameRepo := postgres.NewGameRepo(db)
	go cleanup.NewWorker(gameRepo, cfg.ResultRetentionDays, time.Hour).Run(ctx)

	gin.SetMode(gin.ReleaseMode)
	handler := transportHttp.NewResultsHandler(gameRepo)
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: transportHttp.NewRouter(handler, cfg.AllowedOrigins),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("results API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
}
