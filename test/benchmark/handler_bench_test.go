package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/http/handlers"
	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/store/memory"
	"github.com/Deepika-Sisodia/quote-verse/internal/app"
	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupQuoteHandler builds a handler over an in-memory store seeded
// with n quotes.
func setupQuoteHandler(b *testing.B, n int) *handlers.QuoteHandler {
	b.Helper()

	db := memory.New()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	owner, err := db.Users().Create(ctx, &domain.User{
		Username:     "bench",
		Email:        "bench@example.com",
		PasswordHash: "x",
	})
	if err != nil {
		b.Fatal(err)
	}

	for i := range n {
		_, err := db.Quotes().Create(ctx, &domain.Quote{
			Text:     fmt.Sprintf("bench quote %d", i),
			Author:   "Author",
			Category: domain.CategoryOther,
			OwnerID:  owner.ID,
		})
		if err != nil {
			b.Fatal(err)
		}
	}

	queries := app.NewQueryBuilder(10, 100, ports.NewStaticFlags(nil, nil))
	daily := app.NewDailySelector(db.Quotes(), logger, nil)

	return handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
		Store:   db.Quotes(),
		Queries: queries,
		Daily:   daily,
		Logger:  logger,
	}))
}

// BenchmarkListQuotes measures a default listing page over a populated store.
func BenchmarkListQuotes(b *testing.B) {
	handler := setupQuoteHandler(b, 500)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.List(c)
	}
}

// BenchmarkListQuotes_Search measures a filtered listing, which scans
// the full store in the memory adapter.
func BenchmarkListQuotes_Search(b *testing.B) {
	handler := setupQuoteHandler(b, 500)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes?search=quote+42", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.List(c)
	}
}

// BenchmarkQuoteOfDay measures the daily quote path. After the first
// request this is a cache hit and should not touch the store.
func BenchmarkQuoteOfDay(b *testing.B) {
	handler := setupQuoteHandler(b, 100)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/quote-of-the-day", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.QuoteOfDay(c)
	}
}

// BenchmarkLivenessHandler measures the liveness endpoint, the critical
// path for orchestrator probes.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.BuildInfo{})
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}
