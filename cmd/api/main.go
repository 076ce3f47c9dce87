package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-emoji-ledger/internal/adapter"
	"github.com/feral-file/ff-emoji-ledger/internal/api/middleware"
	"github.com/feral-file/ff-emoji-ledger/internal/api/server"
	"github.com/feral-file/ff-emoji-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-emoji-ledger/internal/catalog"
	"github.com/feral-file/ff-emoji-ledger/internal/config"
	"github.com/feral-file/ff-emoji-ledger/internal/ledger"
	"github.com/feral-file/ff-emoji-ledger/internal/logger"
	"github.com/feral-file/ff-emoji-ledger/internal/messaging"
	"github.com/feral-file/ff-emoji-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-emoji-ledger/internal/reward"
	"github.com/feral-file/ff-emoji-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "emoji-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Emoji Ledger API")

	// Load the emoji catalog
	var cat catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load emoji catalog", zap.Error(err), zap.String("path", cfg.CatalogPath))
	}
	logger.InfoCtx(ctx, "Loaded emoji catalog", zap.Int("size", cat.Len()))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), store.NewGormConfig())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db, cat)
	clock := adapter.NewClock()

	// Ledger events go to JetStream when NATS is configured
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:               cfg.NATS.URL,
			StreamName:        cfg.NATS.StreamName,
			MaxReconnects:     cfg.NATS.MaxReconnects,
			ReconnectWait:     cfg.NATS.ReconnectWait,
			ConnectionName:    cfg.NATS.ConnectionName,
			MaxPublishRetries: 3,
		}, adapter.NewNatsJetStream(), adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		publisher = messaging.NewNoopPublisher()
		logger.WarnCtx(ctx, "NATS URL not configured, ledger events will not be published")
	}
	defer publisher.Close()

	directory := ledger.NewMemberDirectory(dataStore)
	ledgerService := ledger.NewService(ledger.Config{TradingRoles: cfg.Trading.Roles}, dataStore, cat, publisher, directory, clock)

	var rewarder reward.Rewarder
	if cfg.Reward.Enabled {
		period, err := reward.ParsePeriod(cfg.Reward.Period)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid reward period", zap.Error(err))
		}
		rewarder = reward.NewRewarder(period, dataStore, cat, ledgerService, clock)
		logger.InfoCtx(ctx, "Activity rewards enabled", zap.String("period", cfg.Reward.Period))
	}

	exec := executor.NewExecutor(ledgerService, rewarder, directory, cat, dataStore, clock, cfg.Trading.ConfirmationTimeout)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}
	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
