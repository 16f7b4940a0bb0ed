package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ultimatebank/account-service/internal/config"
	"github.com/ultimatebank/account-service/internal/database"
	"github.com/ultimatebank/account-service/internal/events"
	"github.com/ultimatebank/account-service/internal/handler"
	"github.com/ultimatebank/account-service/internal/middleware"
	"github.com/ultimatebank/account-service/internal/models"
	redisClient "github.com/ultimatebank/account-service/internal/redis"
	"github.com/ultimatebank/account-service/internal/repository"
	"github.com/ultimatebank/account-service/internal/service"
	"github.com/ultimatebank/account-service/internal/users"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logger.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("account service stopped", zap.Error(err))
	}
}

type healthyStore interface {
	repository.AccountStore
	handler.HealthChecker
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("account service starting",
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Store),
		zap.Bool("redis", cfg.Redis.Enabled()),
	)

	var store healthyStore
	switch cfg.Store {
	case config.StoreMemory:
		store = repository.NewMemoryAccountStore()
	default:
		db, err := database.Connect(ctx, &cfg.Database, logger.With(zap.String("component", "database")))
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(db, logger.With(zap.String("component", "migrate"))); err != nil {
			return err
		}
		store = repository.NewPostgresAccountStore(db)
	}

	// Redis is optional: it backs the read cache and the account event stream.
	var publisher service.EventPublisher
	if cfg.Redis.Enabled() {
		redis, err := redisClient.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer redis.Close()

		cache := redisClient.NewViewCache[models.AccountRecord](redis.Client, cfg.Redis.CacheTTL, logger.With(zap.String("component", "cache")))
		store = repository.NewCachedAccountStore(store, cache)
		publisher = events.NewPublisher(redis.Client)
	}

	accountService := service.NewAccountService(store, publisher, logger.With(zap.String("component", "AccountService")))

	gin.SetMode(cfg.Server.Mode)
	router := handler.NewRouter(handler.RouterDeps{
		Accounts: accountService,
		Resolver: middleware.NewUserResolver(users.Default(), logger.With(zap.String("component", "auth"))),
		Health:   store,
		Metrics:  middleware.NewMetrics(),
		Logger:   logger,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
