// @title                      Recipes API
// @version                    1.0
// @description                Recipe management with per-user ownership, categories and PDF export.
// @BasePath                   /api
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                Type "Bearer" followed by a space and the token.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ErlanBelekov/recipes-api/config"
	"github.com/ErlanBelekov/recipes-api/internal/auth"
	"github.com/ErlanBelekov/recipes-api/internal/health"
	"github.com/ErlanBelekov/recipes-api/internal/infrastructure/postgres"
	"github.com/ErlanBelekov/recipes-api/internal/infrastructure/redis"
	ctxlog "github.com/ErlanBelekov/recipes-api/internal/log"
	"github.com/ErlanBelekov/recipes-api/internal/metrics"
	"github.com/ErlanBelekov/recipes-api/internal/report"
	"github.com/ErlanBelekov/recipes-api/internal/repository"
	httptransport "github.com/ErlanBelekov/recipes-api/internal/transport/http"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/handler"
	"github.com/ErlanBelekov/recipes-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			stop()
			log.Fatalf("migrate: %v", err)
		}
	}

	deps := []health.Dependency{{Name: "postgres", Pinger: pool}}

	// Categories, optionally cached in redis
	var categoryRepo repository.CategoryRepository = postgres.NewCategoryRepository(pool)
	if cfg.RedisURL != "" {
		rdb, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			stop()
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()

		categoryRepo = redis.NewCategoryCache(categoryRepo, rdb, cfg.CategoryCacheTTL, logger)
		deps = append(deps, health.Dependency{
			Name:   "redis",
			Pinger: health.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		})
		logger.Info("category cache enabled", "ttl", cfg.CategoryCacheTTL)
	}

	tokens := auth.NewTokenService(auth.TokenConfig{
		Secret: []byte(cfg.JWTSecret),
		TTL:    cfg.JWTExpiresIn,
	})

	// Users
	userRepo := postgres.NewUserRepository(pool)
	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(userRepo, tokens, tokens.TTL()), logger)
	userHandler := handler.NewUserHandler(usecase.NewUserUsecase(userRepo), logger)

	// Recipes
	recipeRepo := postgres.NewRecipeRepository(pool)
	recipeUsecase := usecase.NewRecipeUsecase(recipeRepo, categoryRepo, report.NewRenderer())
	recipeHandler := handler.NewRecipeHandler(recipeUsecase, logger)
	categoryHandler := handler.NewCategoryHandler(usecase.NewCategoryUsecase(categoryRepo))

	metrics.Register()
	checker := health.NewChecker(logger, prometheus.DefaultRegisterer, deps...)

	router := httptransport.NewRouter(logger,
		httptransport.RouterConfig{
			APIPrefix:      cfg.APIPrefix,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
		httptransport.Handlers{
			Auth:     authHandler,
			User:     userHandler,
			Category: categoryHandler,
			Recipe:   recipeHandler,
		},
		tokens,
	)

	srv := http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port, "prefix", cfg.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
