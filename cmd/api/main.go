// Package main is the entry point for the Finanzas API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/mairuba/finanzas-backend/config"
	"github.com/mairuba/finanzas-backend/internal/application/adapter"
	"github.com/mairuba/finanzas-backend/internal/infra/db"
	"github.com/mairuba/finanzas-backend/internal/infra/dependency"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finanzas API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"store_backend", cfg.Store.Backend,
	)

	// Initialize the slot store backend
	store, storeHealthChecker, closeStore, err := openStore(&cfg.Store)
	if err != nil {
		slog.Error("Failed to open slot store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Error("Failed to close slot store", "error", err)
		}
	}()

	// Wire dependencies
	injector, err := dependency.NewInjector(context.Background(), cfg, store, storeHealthChecker)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Start the reminder worker when configured
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if injector.ReminderWorker != nil {
		go injector.ReminderWorker.Start(workerCtx)
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// openStore builds the configured slot store backend. It returns the store,
// a health checker for the /health endpoint and a close function.
func openStore(cfg *config.StoreConfig) (adapter.SlotStore, func() bool, func() error, error) {
	switch cfg.Backend {
	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}

		healthChecker := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		return persistence.NewRedisStore(client), healthChecker, client.Close, nil

	case config.StoreBackendSQLite:
		database, err := db.NewSQLiteConnection(cfg)
		if err != nil {
			return nil, nil, nil, err
		}

		if err := database.AutoMigrate(&model.SlotModel{}); err != nil {
			return nil, nil, nil, err
		}

		return persistence.NewSQLiteStore(database.DB()), database.HealthCheck, database.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
