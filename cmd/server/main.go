package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/article-writer-api/internal/api"
	"github.com/article-writer-api/internal/config"
	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/llm"
	"github.com/article-writer-api/internal/ratelimit"
	"github.com/article-writer-api/internal/repository"
	"github.com/article-writer-api/internal/service"
	"github.com/article-writer-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Article Writer API server...")

	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize generation client
	generator, err := llm.NewClient(context.Background(), cfg.Generation.APIKey, cfg.Generation.Model, cfg.Generation.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generation client")
	}

	// Initialize rate limiter, Redis-backed when configured
	var limiter ratelimit.Limiter
	if cfg.RateLimit.RedisAddr != "" {
		limiter, err = ratelimit.NewRedisLimiter(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPass, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		log.Info().Str("addr", cfg.RateLimit.RedisAddr).Msg("Using Redis rate limiter")
	} else {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
		log.Info().Msg("Using in-memory rate limiter")
	}

	// Initialize services
	services := service.NewServices(repos, generator, cfg, log)

	// Initialize router
	router := api.NewRouter(services, limiter, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
