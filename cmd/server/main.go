// Command server starts the recipe roulette HTTP API.
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipegen/recipe-roulette/internal/api"
	"github.com/recipegen/recipe-roulette/internal/infrastructure/catalog"
	"github.com/recipegen/recipe-roulette/internal/infrastructure/config"
	mongostore "github.com/recipegen/recipe-roulette/internal/infrastructure/db/mongo"
	redisstore "github.com/recipegen/recipe-roulette/internal/infrastructure/db/redis"
	"github.com/recipegen/recipe-roulette/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "recipe-roulette",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// Connect also bootstraps the indexes; the unique username index must
	// exist before the first registration is served.
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	// The dataset is loaded once; the catalog is immutable afterwards.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("catalog load failed")
	}
	log.Info().Int("recipes", cat.Len()).Str("path", cfg.CatalogPath).Msg("catalog loaded")

	e := api.NewRouter(db, rdb, cat, log, api.Options{
		JWTSecret:           cfg.JWTSecret,
		TokenTTL:            24 * time.Hour,
		ThrottleMaxFailures: cfg.Throttle.MaxFailures,
		ThrottleWindow:      cfg.Throttle.Window,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		errCh <- e.Start(":" + cfg.Port)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	log.Info().Msg("shutdown complete")
}
