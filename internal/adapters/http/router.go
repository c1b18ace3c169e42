package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/handlers"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/middleware"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/telemetry"
)

// DefaultRequestTimeout is the default timeout for API requests.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the service in telemetry spans.
	ServiceName string

	// Tokens verifies bearer tokens on protected routes.
	Tokens middleware.TokenVerifier

	// QuoteHandler handles quote endpoints.
	QuoteHandler *handlers.QuoteHandler

	// UserHandler handles auth and user endpoints.
	UserHandler *handlers.UserHandler

	// HealthHandler handles internal endpoints.
	HealthHandler *handlers.HealthHandler

	// Timeout is the per-request deadline for API routes.
	Timeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware order (first to last): recovery, request ID, correlation
// ID, telemetry, logging. Internal /-/ endpoints skip the API timeout
// so probes cannot be starved by a slow store.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterRoutes(engine)
	}

	apiV1 := engine.Group("/api/v1")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	apiV1.Use(middleware.Timeout(timeout))

	requireAuth := middleware.RequireAuth(cfg.Tokens)

	cfg.QuoteHandler.RegisterRoutes(apiV1, requireAuth)
	cfg.UserHandler.RegisterRoutes(apiV1, requireAuth)
}
