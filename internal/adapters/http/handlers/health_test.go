package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticChecker struct {
	name string
	err  error
}

func (c staticChecker) Name() string { return c.name }

func (c staticChecker) Check(_ context.Context) error { return c.err }

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("1.2.3", "abc123", "2026-01-01T00:00:00Z")

	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/-/live", nil)

	handler.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		name           string
		checkers       []ports.HealthChecker
		expectedStatus int
		expectedState  string
	}{
		{
			name:           "no checks is healthy",
			checkers:       nil,
			expectedStatus: http.StatusOK,
			expectedState:  "healthy",
		},
		{
			name: "passing check is healthy",
			checkers: []ports.HealthChecker{
				staticChecker{name: "store"},
			},
			expectedStatus: http.StatusOK,
			expectedState:  "healthy",
		},
		{
			name: "failing check is unhealthy",
			checkers: []ports.HealthChecker{
				staticChecker{name: "store"},
				staticChecker{name: "cache", err: errors.New("connection refused")},
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := ports.NewHealthRegistry()
			for _, checker := range tt.checkers {
				require.NoError(t, registry.Register(checker))
			}

			handler := NewHealthHandler(registry, BuildInfo{})

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/-/ready", nil)

			handler.Readiness(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedState, resp.Status)
		})
	}
}

func TestHealthHandler_RegisterRoutes(t *testing.T) {
	handler := NewHealthHandler(ports.NewHealthRegistry(), BuildInfo{Version: "test"})

	engine := gin.New()
	handler.RegisterRoutes(engine)

	routeMap := make(map[string]bool)
	for _, r := range engine.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
	} {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
