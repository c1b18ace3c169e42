// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never adapter DTOs or driver types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

// QuoteSort selects the ordering of a quote query.
type QuoteSort string

const (
	// SortNewest orders by creation time, newest first. This is the default.
	SortNewest QuoteSort = "newest"

	// SortMostLiked orders by like count, highest first.
	SortMostLiked QuoteSort = "most-liked"
)

// QuoteQuery describes a filtered, sorted, paginated quote lookup.
// The zero value matches everything, newest first, unbounded.
type QuoteQuery struct {
	// Search matches case-insensitive substrings of either the text
	// or the author field (logical OR). Empty disables the filter.
	Search string

	// Category filters on an exact category match. Empty disables the filter.
	Category string

	// Owner restricts results to quotes posted by the given user id.
	// Empty disables the filter.
	Owner string

	// LikedBy restricts results to quotes liked by the given user id.
	// Empty disables the filter.
	LikedBy string

	// IDs restricts results to the given quote ids. Nil disables the filter.
	IDs []string

	// Sort selects the ordering. Empty means SortNewest.
	Sort QuoteSort

	// Offset is the number of matching records to skip.
	Offset int

	// Limit caps the number of records returned. Zero means no cap.
	Limit int
}

// QuoteStore is the persistence boundary for quote records.
type QuoteStore interface {
	// Create persists a new quote, assigning its ID and timestamps.
	// Returns the stored quote with owner name resolved.
	Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error)

	// GetByID retrieves a quote with its owner name resolved.
	// Returns domain.ErrNotFound if the quote does not exist.
	GetByID(ctx context.Context, id string) (*domain.Quote, error)

	// Update persists changes to text, author, category, and tags.
	// Owner and likes are not touched. Returns domain.ErrNotFound if
	// the quote does not exist.
	Update(ctx context.Context, q *domain.Quote) (*domain.Quote, error)

	// Delete removes a quote. Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Find returns the quotes matching the query window, owner names resolved.
	Find(ctx context.Context, q QuoteQuery) ([]*domain.Quote, error)

	// Count returns the total number of quotes matching the query,
	// ignoring Offset and Limit.
	Count(ctx context.Context, q QuoteQuery) (int, error)

	// QuoteAt returns the quote at the given ordinal position in the
	// store's fixed ordering. Returns domain.ErrNotFound when the index
	// is out of range.
	QuoteAt(ctx context.Context, index int) (*domain.Quote, error)

	// Categories returns the distinct categories currently in use.
	Categories(ctx context.Context) ([]string, error)

	// ToggleLike atomically flips userID's membership in the quote's
	// likes list and returns the resulting like count. The flip and the
	// save happen under the store's own concurrency control, so two
	// concurrent toggles cannot lose an update.
	// Returns domain.ErrNotFound if the quote does not exist.
	ToggleLike(ctx context.Context, quoteID, userID string) (int, error)
}

// UserStore is the persistence boundary for user records.
type UserStore interface {
	// Create persists a new user, assigning its ID and timestamps.
	// Returns domain.ErrConflict when the username or email is taken.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)

	// GetByID retrieves a user. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by normalized email.
	// Returns domain.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ToggleFavorite atomically flips quoteID's membership in the user's
	// favorites list and returns the resulting list. Atomic for the same
	// reason as QuoteStore.ToggleLike.
	// Returns domain.ErrNotFound if the user does not exist.
	ToggleFavorite(ctx context.Context, userID, quoteID string) ([]string, error)
}
