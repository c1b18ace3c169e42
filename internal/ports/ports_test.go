package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubChecker is a HealthChecker with a fixed outcome.
type stubChecker struct {
	name string
	err  error
}

func (c *stubChecker) Name() string { return c.name }

func (c *stubChecker) Check(_ context.Context) error { return c.err }

func TestHealthRegistry_RejectsDuplicateNames(t *testing.T) {
	reg := NewHealthRegistry()

	require.NoError(t, reg.Register(&stubChecker{name: "store"}))

	err := reg.Register(&stubChecker{name: "store"})
	assert.ErrorIs(t, err, ErrDuplicateChecker)
}

func TestHealthRegistry_CheckAll(t *testing.T) {
	tests := []struct {
		name       string
		checkers   []*stubChecker
		wantStatus HealthStatus
	}{
		{
			name:       "no checkers is healthy",
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "all passing",
			checkers: []*stubChecker{
				{name: "a"}, {name: "b"},
			},
			wantStatus: HealthStatusHealthy,
		},
		{
			name: "one failing makes the whole result unhealthy",
			checkers: []*stubChecker{
				{name: "a"},
				{name: "b", err: errors.New("connection refused")},
			},
			wantStatus: HealthStatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewHealthRegistry()
			for _, c := range tt.checkers {
				require.NoError(t, reg.Register(c))
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			result := reg.CheckAll(ctx)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Len(t, result.Checks, len(tt.checkers))

			for _, c := range tt.checkers {
				check := result.Checks[c.name]
				require.NotNil(t, check)

				if c.err != nil {
					assert.Equal(t, HealthStatusUnhealthy, check.Status)
					assert.Equal(t, c.err.Error(), check.Message)
				} else {
					assert.Equal(t, HealthStatusHealthy, check.Status)
					assert.Empty(t, check.Message)
				}
			}
		})
	}
}

func TestStaticFlags(t *testing.T) {
	flags := NewStaticFlags(
		map[string]bool{FlagSortMostLiked: true},
		map[string]string{"banner": "hello"},
	)

	ctx := context.Background()

	assert.True(t, flags.IsEnabled(ctx, FlagSortMostLiked, false))
	assert.False(t, flags.IsEnabled(ctx, "missing", false))
	assert.True(t, flags.IsEnabled(ctx, "missing", true), "default wins for unknown flags")

	assert.Equal(t, "hello", flags.GetString(ctx, "banner", "x"))
	assert.Equal(t, "x", flags.GetString(ctx, "missing", "x"))
}

func TestStaticFlags_NilMaps(t *testing.T) {
	flags := NewStaticFlags(nil, nil)

	assert.True(t, flags.IsEnabled(context.Background(), "anything", true))
	assert.Equal(t, "d", flags.GetString(context.Background(), "anything", "d"))
}
