package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/recipegen/recipe-roulette/internal/api/handler"
	"github.com/recipegen/recipe-roulette/internal/api/middleware"
	"github.com/recipegen/recipe-roulette/internal/core/ports"
	"github.com/recipegen/recipe-roulette/internal/core/service"
	mongostore "github.com/recipegen/recipe-roulette/internal/infrastructure/db/mongo"
	redisstore "github.com/recipegen/recipe-roulette/internal/infrastructure/db/redis"
)

// Options carries the router's tunable settings.
type Options struct {
	JWTSecret           string
	TokenTTL            time.Duration
	ThrottleMaxFailures int
	ThrottleWindow      time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, catalog ports.Catalog, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recipes"))

	// --- Dependencies ---
	credentialRepo := mongostore.NewCredentialRepository(db)
	historyRepo := mongostore.NewHistoryRepository(db)
	throttle := redisstore.NewLoginThrottle(rdb, opts.ThrottleMaxFailures, opts.ThrottleWindow)

	authService := service.NewAuthService(credentialRepo, throttle, opts.JWTSecret, opts.TokenTTL, log)
	historyService := service.NewHistoryService(historyRepo, log)
	selector := service.NewSelectorService()

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(catalog, selector, historyService)
	historyHandler := handler.NewHistoryHandler(historyService)
	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Recipe and history routes (token required) ---
	e.POST("/recipes/generate", recipeHandler.Generate, authMiddleware)
	e.GET("/recipes/facets", recipeHandler.Facets, authMiddleware)
	e.GET("/history", historyHandler.List, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
