package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// dateLayout keys the daily cache. One quote per calendar day.
const dateLayout = "2006-01-02"

// DailySelector picks a deterministic quote of the day.
//
// The selection is a pure function of the date and the store size:
// the date's digits form an integer seed, and seed mod N indexes into
// the store's fixed ordering. Every replica therefore picks the same
// quote without coordination.
//
// The single-slot cache holds at most one entry, keyed by date. A date
// rollover replaces the slot. Concurrent misses are collapsed through
// singleflight so the store sees one lookup per day.
type DailySelector struct {
	store  ports.QuoteStore
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time

	mu         sync.Mutex
	cachedDate string
	cached     *domain.Quote

	group singleflight.Group

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

// NewDailySelector creates a daily quote selector.
// Pass a nil registerer to skip metric registration.
func NewDailySelector(store ports.QuoteStore, logger *slog.Logger, reg prometheus.Registerer) *DailySelector {
	s := &DailySelector{
		store:  store,
		logger: logger,
		now:    time.Now,
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quote_of_day_cache_hits_total",
			Help: "Number of quote-of-the-day requests served from cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quote_of_day_cache_misses_total",
			Help: "Number of quote-of-the-day requests that hit the store.",
		}),
	}

	if reg != nil {
		reg.MustRegister(s.cacheHits, s.cacheMisses)
	}

	return s
}

// QuoteOfDay returns today's quote.
// Returns domain.ErrNotFound when the store is empty; an empty store is
// never cached, so the first quote added becomes eligible immediately.
func (s *DailySelector) QuoteOfDay(ctx context.Context) (*domain.Quote, error) {
	date := s.now().Format(dateLayout)

	s.mu.Lock()
	if s.cachedDate == date && s.cached != nil {
		quote := s.cached
		s.mu.Unlock()
		s.cacheHits.Inc()

		return quote, nil
	}
	s.mu.Unlock()

	s.cacheMisses.Inc()

	v, err, _ := s.group.Do(date, func() (any, error) {
		return s.selectFor(ctx, date)
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Quote), nil
}

// selectFor runs the seeded selection for a date and fills the cache.
func (s *DailySelector) selectFor(ctx context.Context, date string) (*domain.Quote, error) {
	count, err := s.store.Count(ctx, ports.QuoteQuery{})
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, domain.NewNotFoundError("quote of the day", "")
	}

	index := SeedForDate(date) % count

	quote, err := s.store.QuoteAt(ctx, index)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cachedDate = date
	s.cached = quote
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "selected quote of the day",
		slog.String("date", date),
		slog.Int("index", index),
		slog.String("quote_id", quote.ID),
	)

	return quote, nil
}

// SeedForDate derives the selection seed from an ISO date string.
// The digits of the date form the seed: "2026-08-29" becomes 20260829.
func SeedForDate(date string) int {
	digits := strings.ReplaceAll(date, "-", "")

	seed, err := strconv.Atoi(digits)
	if err != nil {
		// Unreachable with a time.Format produced date.
		return 0
	}

	return seed
}
