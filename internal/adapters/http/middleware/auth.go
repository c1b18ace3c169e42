package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/dto"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/logging"
)

// ContextKeyUserID is the gin context key for the authenticated user id.
const ContextKeyUserID = "user_id"

// bearerPrefix is the expected Authorization scheme.
const bearerPrefix = "Bearer "

// TokenVerifier validates a bearer token and returns the user id it
// was issued to.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth returns middleware that authenticates requests with a
// bearer token. The verified user id is stored in the gin context and
// attached to the context logger.
func RequireAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "authorization header required")

			return
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" {
			abortUnauthorized(c, "bearer token required")

			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")

			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Request = c.Request.WithContext(
			logging.WithUserID(c.Request.Context(), userID))

		c.Next()
	}
}

// UserID extracts the authenticated user id from the gin context.
// Returns empty string on unauthenticated requests.
func UserID(c *gin.Context) string {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}

// abortUnauthorized aborts with a 401 response.
func abortUnauthorized(c *gin.Context, message string) {
	errResp := dto.NewErrorResponse(dto.ErrorCodeUnauthorized, message)

	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		errResp.TraceID = span.SpanContext().TraceID().String()
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
}
