// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	store   ports.QuoteStore
	queries *QueryBuilder
	daily   *DailySelector
	logger  *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store   ports.QuoteStore
	Queries *QueryBuilder
	Daily   *DailySelector
	Logger  *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	return &QuoteService{
		store:   cfg.Store,
		queries: cfg.Queries,
		daily:   cfg.Daily,
		logger:  cfg.Logger,
	}
}

// CreateQuoteInput carries the fields a caller may set on a new quote.
type CreateQuoteInput struct {
	Text     string
	Author   string
	Category string
	Tags     []string
}

// UpdateQuoteInput carries the fields a caller may change on a quote.
// Nil pointers leave the field untouched.
type UpdateQuoteInput struct {
	Text     *string
	Author   *string
	Category *string
	Tags     []string
}

// List returns one page of quotes matching the given parameters,
// plus the pagination envelope. The page fetch and the total count
// run concurrently against the store.
func (s *QuoteService) List(ctx context.Context, p ListParams) ([]*domain.Quote, Pagination, error) {
	query, page, limit, err := s.queries.Build(ctx, p)
	if err != nil {
		return nil, Pagination{}, err
	}

	countQuery := query
	countQuery.Offset = 0
	countQuery.Limit = 0

	quotes, total, err := Parallel2(ctx,
		func(ctx context.Context) ([]*domain.Quote, error) {
			return s.store.Find(ctx, query)
		},
		func(ctx context.Context) (int, error) {
			return s.store.Count(ctx, countQuery)
		},
	)
	if err != nil {
		return nil, Pagination{}, err
	}

	return quotes, NewPagination(total, page, limit), nil
}

// Get retrieves a quote by id.
func (s *QuoteService) Get(ctx context.Context, id string) (*domain.Quote, error) {
	if err := validateID("quote", id); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Create validates and persists a new quote owned by ownerID.
// Unknown categories are normalized to Other rather than rejected.
func (s *QuoteService) Create(ctx context.Context, ownerID string, in CreateQuoteInput) (*domain.Quote, error) {
	quote := &domain.Quote{
		Text:     in.Text,
		Author:   in.Author,
		Category: domain.ParseCategory(in.Category),
		Tags:     in.Tags,
		OwnerID:  ownerID,
	}

	if err := quote.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, quote)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "created quote",
		slog.String("quote_id", created.ID),
		slog.String("owner_id", ownerID),
	)

	return created, nil
}

// Update applies partial changes to a quote. Only the owner may update.
func (s *QuoteService) Update(ctx context.Context, id, callerID string, in UpdateQuoteInput) (*domain.Quote, error) {
	quote, err := s.ownedQuote(ctx, id, callerID, "update quote")
	if err != nil {
		return nil, err
	}

	if in.Text != nil {
		quote.Text = *in.Text
	}

	if in.Author != nil {
		quote.Author = *in.Author
	}

	if in.Category != nil {
		quote.Category = domain.ParseCategory(*in.Category)
	}

	if in.Tags != nil {
		quote.Tags = in.Tags
	}

	if err := quote.Validate(); err != nil {
		return nil, err
	}

	return s.store.Update(ctx, quote)
}

// Delete removes a quote. Only the owner may delete.
func (s *QuoteService) Delete(ctx context.Context, id, callerID string) error {
	if _, err := s.ownedQuote(ctx, id, callerID, "delete quote"); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleted quote",
		slog.String("quote_id", id),
		slog.String("owner_id", callerID),
	)

	return nil
}

// ToggleLike flips the caller's like on a quote and returns the
// resulting like count and whether the caller now likes it.
func (s *QuoteService) ToggleLike(ctx context.Context, quoteID, userID string) (int, bool, error) {
	if err := validateID("quote", quoteID); err != nil {
		return 0, false, err
	}

	count, err := s.store.ToggleLike(ctx, quoteID, userID)
	if err != nil {
		return 0, false, err
	}

	quote, err := s.store.GetByID(ctx, quoteID)
	if err != nil {
		return 0, false, err
	}

	return count, quote.LikedBy(userID), nil
}

// QuoteOfDay returns the deterministic quote for the current date.
func (s *QuoteService) QuoteOfDay(ctx context.Context) (*domain.Quote, error) {
	return s.daily.QuoteOfDay(ctx)
}

// ListCategories returns the distinct categories currently in use.
func (s *QuoteService) ListCategories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

// ownedQuote loads a quote and checks the caller owns it.
func (s *QuoteService) ownedQuote(ctx context.Context, id, callerID, operation string) (*domain.Quote, error) {
	if err := validateID("quote", id); err != nil {
		return nil, err
	}

	quote, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if quote.OwnerID != callerID {
		return nil, domain.NewForbiddenError(operation, "not the owner")
	}

	return quote, nil
}

// validateID rejects identifiers that cannot possibly exist in the
// store, mapping the failure to domain.ErrInvalidID rather than a
// not-found so clients can distinguish typos from missing records.
func validateID(entity, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewInvalidIDError(entity, id)
	}

	return nil
}
