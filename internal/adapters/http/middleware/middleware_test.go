package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepika-Sisodia/quote-verse/internal/platform/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())

	var captured string

	engine.GET("/", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, rec.Header().Get(HeaderRequestID))
}

func TestRequestID_PropagatesWhenPresent(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
}

func TestCorrelationID_Propagates(t *testing.T) {
	engine := gin.New()
	engine.Use(CorrelationID())
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderCorrelationID, "corr-456")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "corr-456", rec.Header().Get(HeaderCorrelationID))
}

func TestTimeout_SetsDeadline(t *testing.T) {
	engine := gin.New()
	engine.Use(Timeout(time.Second))

	var hasDeadline bool

	engine.GET("/", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, hasDeadline)
}

type failingVerifier struct{}

func (failingVerifier) Verify(string) (string, error) {
	return "", errors.New("bad token")
}

func newAuthEngine(t *testing.T, tokens TokenVerifier) (*gin.Engine, *string) {
	t.Helper()

	engine := gin.New()
	engine.Use(RequireAuth(tokens))

	var captured string

	engine.GET("/", func(c *gin.Context) {
		captured = UserID(c)
		c.Status(http.StatusOK)
	})

	return engine, &captured
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	engine, _ := newAuthEngine(t, failingVerifier{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	engine, _ := newAuthEngine(t, failingVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	engine, _ := newAuthEngine(t, failingVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	manager := auth.NewTokenManager("secret", "quote-verse", time.Hour)

	token, err := manager.Issue("user-1")
	require.NoError(t, err)

	engine, captured := newAuthEngine(t, manager)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", *captured)
}
