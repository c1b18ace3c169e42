// Package middleware provides HTTP middleware components for the Gin server.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Deepika-Sisodia/quote-verse/internal/platform/logging"
)

const (
	// HeaderRequestID is the header name for the per-request ID.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID is the header name for the correlation ID,
	// which tracks a business transaction across services.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// RequestID returns middleware that extracts or generates a request ID.
// The ID is taken from the X-Request-ID header when present, generated
// otherwise, echoed on the response, and attached to the context logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, ContextKeyRequestID, logging.WithRequestID)
}

// CorrelationID returns middleware that propagates the correlation ID
// from upstream, generating one at the transaction origin.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, ContextKeyCorrelationID, logging.WithCorrelationID)
}

// GetRequestID extracts the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return idFromContext(c, ContextKeyRequestID)
}

// GetCorrelationID extracts the correlation ID from the gin context.
func GetCorrelationID(c *gin.Context) string {
	return idFromContext(c, ContextKeyCorrelationID)
}

// idMiddleware is the shared implementation for header-carried IDs.
func idMiddleware(header, contextKey string, enrich func(context.Context, string) context.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(contextKey, id)
		c.Header(header, id)
		c.Request = c.Request.WithContext(enrich(c.Request.Context(), id))

		c.Next()
	}
}

func idFromContext(c *gin.Context, key string) string {
	if id, exists := c.Get(key); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}
