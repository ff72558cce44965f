package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geoyouth/league-api/internal/api"
	"github.com/geoyouth/league-api/internal/core/service"
	"github.com/geoyouth/league-api/internal/infrastructure/config"
	"github.com/geoyouth/league-api/internal/infrastructure/db/postgres"
	"github.com/geoyouth/league-api/pkg/logger"
)

// @title Youth Football League API
// @version 1.0
// @description REST backend for a youth football league: clubs, teams, players, coaches, matches, tournaments and news, with JWT authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.Env != "development" && cfg.JWTSecret == "your_jwt_secret" {
		log.Fatal().Msg("JWT_SECRET must be overridden outside development")
	}

	db, err := postgres.Open(ctx, cfg.Postgres.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect to postgres")
	}
	defer db.Close()

	tokens := service.NewTokenIssuer(cfg.JWTSecret, service.DefaultTokenTTL)

	e := api.NewRouter(db, tokens, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
