package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// QuoteStore implements ports.QuoteStore over an in-process DB.
type QuoteStore struct {
	db *DB
}

var _ ports.QuoteStore = (*QuoteStore)(nil)

// Create implements ports.QuoteStore.
func (s *QuoteStore) Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored := cloneQuote(q)
	stored.ID = uuid.NewString()
	stored.CreatedAt = s.db.now()
	stored.UpdatedAt = stored.CreatedAt

	s.db.quotes = append(s.db.quotes, stored)

	out := cloneQuote(stored)
	out.OwnerName = s.db.ownerNameLocked(stored.OwnerID)

	return out, nil
}

// GetByID implements ports.QuoteStore.
func (s *QuoteStore) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	q := s.db.findQuoteLocked(id)
	if q == nil {
		return nil, domain.NewNotFoundError("quote", id)
	}

	out := cloneQuote(q)
	out.OwnerName = s.db.ownerNameLocked(q.OwnerID)

	return out, nil
}

// Update implements ports.QuoteStore.
func (s *QuoteStore) Update(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored := s.db.findQuoteLocked(q.ID)
	if stored == nil {
		return nil, domain.NewNotFoundError("quote", q.ID)
	}

	stored.Text = q.Text
	stored.Author = q.Author
	stored.Category = q.Category
	stored.Tags = append([]string(nil), q.Tags...)
	stored.UpdatedAt = s.db.now()

	out := cloneQuote(stored)
	out.OwnerName = s.db.ownerNameLocked(stored.OwnerID)

	return out, nil
}

// Delete implements ports.QuoteStore.
func (s *QuoteStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i, q := range s.db.quotes {
		if q.ID == id {
			s.db.quotes = append(s.db.quotes[:i], s.db.quotes[i+1:]...)

			return nil
		}
	}

	return domain.NewNotFoundError("quote", id)
}

// Find implements ports.QuoteStore.
func (s *QuoteStore) Find(ctx context.Context, query ports.QuoteQuery) ([]*domain.Quote, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	matched := s.matchLocked(query)

	sortQuotes(matched, query.Sort)

	matched = window(matched, query.Offset, query.Limit)

	out := make([]*domain.Quote, 0, len(matched))

	for _, q := range matched {
		c := cloneQuote(q)
		c.OwnerName = s.db.ownerNameLocked(q.OwnerID)
		out = append(out, c)
	}

	return out, nil
}

// Count implements ports.QuoteStore.
func (s *QuoteStore) Count(ctx context.Context, query ports.QuoteQuery) (int, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return len(s.matchLocked(query)), nil
}

// QuoteAt implements ports.QuoteStore. The ordinal position follows
// insertion order, so the same index names the same quote until the
// set changes.
func (s *QuoteStore) QuoteAt(ctx context.Context, index int) (*domain.Quote, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if index < 0 || index >= len(s.db.quotes) {
		return nil, domain.NewNotFoundError("quote", "")
	}

	q := s.db.quotes[index]
	out := cloneQuote(q)
	out.OwnerName = s.db.ownerNameLocked(q.OwnerID)

	return out, nil
}

// Categories implements ports.QuoteStore.
func (s *QuoteStore) Categories(ctx context.Context) ([]string, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	seen := make(map[string]bool)
	categories := make([]string, 0)

	for _, q := range s.db.quotes {
		c := string(q.Category)
		if !seen[c] {
			seen[c] = true

			categories = append(categories, c)
		}
	}

	sort.Strings(categories)

	return categories, nil
}

// ToggleLike implements ports.QuoteStore. The flip happens under the
// store lock, so concurrent toggles on the same quote serialize.
func (s *QuoteStore) ToggleLike(ctx context.Context, quoteID, userID string) (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	q := s.db.findQuoteLocked(quoteID)
	if q == nil {
		return 0, domain.NewNotFoundError("quote", quoteID)
	}

	q.Likes = domain.Toggle(q.Likes, userID)
	q.UpdatedAt = s.db.now()

	return len(q.Likes), nil
}

// matchLocked returns the quotes matching the query's filters in
// insertion order. Caller holds at least a read lock.
func (s *QuoteStore) matchLocked(query ports.QuoteQuery) []*domain.Quote {
	var idSet map[string]bool

	if query.IDs != nil {
		idSet = make(map[string]bool, len(query.IDs))
		for _, id := range query.IDs {
			idSet[id] = true
		}
	}

	search := strings.ToLower(query.Search)
	matched := make([]*domain.Quote, 0)

	for _, q := range s.db.quotes {
		if search != "" &&
			!strings.Contains(strings.ToLower(q.Text), search) &&
			!strings.Contains(strings.ToLower(q.Author), search) {
			continue
		}

		if query.Category != "" && string(q.Category) != query.Category {
			continue
		}

		if query.Owner != "" && q.OwnerID != query.Owner {
			continue
		}

		if query.LikedBy != "" && !q.LikedBy(query.LikedBy) {
			continue
		}

		if idSet != nil && !idSet[q.ID] {
			continue
		}

		matched = append(matched, q)
	}

	return matched
}

// sortQuotes orders matched quotes in place. The input arrives in
// insertion order, which doubles as the creation-time tiebreaker.
func sortQuotes(quotes []*domain.Quote, by ports.QuoteSort) {
	switch by {
	case ports.SortMostLiked:
		sort.SliceStable(quotes, func(i, j int) bool {
			return len(quotes[i].Likes) > len(quotes[j].Likes)
		})
	default:
		// Newest first: reverse of insertion order.
		for i, j := 0, len(quotes)-1; i < j; i, j = i+1, j-1 {
			quotes[i], quotes[j] = quotes[j], quotes[i]
		}
	}
}

// window applies offset and limit to an ordered result set.
func window(quotes []*domain.Quote, offset, limit int) []*domain.Quote {
	if offset >= len(quotes) {
		return nil
	}

	quotes = quotes[offset:]

	if limit > 0 && limit < len(quotes) {
		quotes = quotes[:limit]
	}

	return quotes
}
