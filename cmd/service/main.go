// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/handlers"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/store/memory"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/store/sqlite"
	"github.com/Deepika-Sisodia/quote-verse/internal/app"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/auth"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/config"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/logging"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/telemetry"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// .env is a local development convenience; absence is not an error.
	_ = godotenv.Load()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Open the persistence store selected by configuration
	quoteStore, userStore, storeChecker, closeStore, err := openStore(&cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer closeStore()

	if err := healthRegistry.Register(storeChecker); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Build auth primitives
	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)

	// 8. Build feature flags from configuration
	flags := ports.NewStaticFlags(map[string]bool{
		ports.FlagSortMostLiked: cfg.Flags.SortMostLiked,
	}, nil)

	// 9. Create application services
	queries := app.NewQueryBuilder(cfg.Quotes.DefaultLimit, cfg.Quotes.MaxLimit, flags)
	daily := app.NewDailySelector(quoteStore, logger, prometheus.DefaultRegisterer)

	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:   quoteStore,
		Queries: queries,
		Daily:   daily,
		Logger:  logger,
	})

	userService := app.NewUserService(app.UserServiceConfig{
		Users:  userStore,
		Quotes: quoteStore,
		Tokens: tokens,
		Hasher: hasher,
		Logger: logger,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	userHandler := handlers.NewUserHandler(userService)

	// 11. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 12. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.App.Name,
		Tokens:        tokens,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		UserHandler:   userHandler,
		Timeout:       http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// openStore constructs the persistence adapter named by the store driver.
// It returns the quote and user store views, a health checker for the
// backing store, and a close function.
func openStore(cfg *config.StoreConfig, logger *slog.Logger) (
	ports.QuoteStore, ports.UserStore, ports.HealthChecker, func(), error,
) {
	switch cfg.Driver {
	case "sqlite":
		db, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		logger.Info("opened sqlite store", slog.String("path", cfg.Path))

		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Error("closing sqlite store", slog.Any("error", err))
			}
		}

		return db.Quotes(), db.Users(), db, closeFn, nil

	case "memory":
		db := memory.New()

		logger.Info("using in-memory store")

		return db.Quotes(), db.Users(), db, func() {}, nil

	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
