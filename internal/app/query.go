package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// CategoryAll is the category filter value that disables category
// filtering. Matching is case-insensitive.
const CategoryAll = "All"

// ListParams carries the raw, unvalidated listing inputs as they arrive
// from the transport layer. Empty strings mean "not provided".
type ListParams struct {
	Search   string
	Category string
	Sort     string
	Page     string
	Limit    string
}

// Pagination describes one page of a result set.
type Pagination struct {
	Total int
	Page  int
	Limit int
	Pages int
}

// NewPagination computes the page count for a result set.
// Pages is ceil(total/limit); zero results means zero pages.
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}

	return Pagination{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}

// QueryBuilder validates listing inputs and translates them into store
// queries. Malformed input yields domain.ErrInvalidQuery; the builder
// never silently corrects bad values, only fills in absent ones.
type QueryBuilder struct {
	defaultLimit int
	maxLimit     int
	flags        ports.FeatureFlags
}

// NewQueryBuilder creates a query builder with the given paging defaults.
func NewQueryBuilder(defaultLimit, maxLimit int, flags ports.FeatureFlags) *QueryBuilder {
	return &QueryBuilder{
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		flags:        flags,
	}
}

// Build validates params and produces the store query for one page.
// The returned page number and limit are the resolved values after
// defaulting, for use in the response envelope.
func (b *QueryBuilder) Build(ctx context.Context, p ListParams) (ports.QuoteQuery, int, int, error) {
	var q ports.QuoteQuery

	page, err := parsePositiveInt("page", p.Page, 1)
	if err != nil {
		return q, 0, 0, err
	}

	limit, err := parsePositiveInt("limit", p.Limit, b.defaultLimit)
	if err != nil {
		return q, 0, 0, err
	}

	if limit > b.maxLimit {
		limit = b.maxLimit
	}

	category, err := resolveCategory(p.Category)
	if err != nil {
		return q, 0, 0, err
	}

	sort, err := b.resolveSort(ctx, p.Sort)
	if err != nil {
		return q, 0, 0, err
	}

	q = ports.QuoteQuery{
		Search:   strings.TrimSpace(p.Search),
		Category: category,
		Sort:     sort,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	}

	return q, page, limit, nil
}

// parsePositiveInt parses a raw query value as a positive integer,
// returning fallback when the value is absent.
func parsePositiveInt(param, raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewInvalidQueryError(param, "must be an integer")
	}

	if n < 1 {
		return 0, domain.NewInvalidQueryError(param, "must be at least 1")
	}

	return n, nil
}

// resolveCategory maps the raw category filter to its canonical form.
// Empty or "All" (any case) disables the filter; unknown names are rejected.
func resolveCategory(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, CategoryAll) {
		return "", nil
	}

	for _, c := range domain.Categories() {
		if strings.EqualFold(raw, string(c)) {
			return string(c), nil
		}
	}

	return "", domain.NewInvalidQueryError("category", "unknown category "+strconv.Quote(raw))
}

// resolveSort maps the raw sort value to a store ordering.
// "most-liked" is always accepted, but only takes effect while the
// like-count ordering flag is on; otherwise it degrades to newest-first.
func (b *QueryBuilder) resolveSort(ctx context.Context, raw string) (ports.QuoteSort, error) {
	switch strings.TrimSpace(raw) {
	case "", string(ports.SortNewest):
		return ports.SortNewest, nil
	case string(ports.SortMostLiked):
		if b.flags != nil && b.flags.IsEnabled(ctx, ports.FlagSortMostLiked, false) {
			return ports.SortMostLiked, nil
		}

		return ports.SortNewest, nil
	default:
		return "", domain.NewInvalidQueryError("sort", "must be newest or most-liked")
	}
}
