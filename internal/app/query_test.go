package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

func newTestBuilder(mostLiked bool) *QueryBuilder {
	flags := ports.NewStaticFlags(map[string]bool{
		ports.FlagSortMostLiked: mostLiked,
	}, nil)

	return NewQueryBuilder(10, 100, flags)
}

func TestQueryBuilder_Defaults(t *testing.T) {
	b := newTestBuilder(false)

	q, page, limit, err := b.Build(context.Background(), ListParams{})
	require.NoError(t, err)

	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, q.Offset)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, ports.SortNewest, q.Sort)
	assert.Empty(t, q.Search)
	assert.Empty(t, q.Category)
}

func TestQueryBuilder_OffsetFromPage(t *testing.T) {
	b := newTestBuilder(false)

	q, page, limit, err := b.Build(context.Background(), ListParams{Page: "3", Limit: "20"})
	require.NoError(t, err)

	assert.Equal(t, 3, page)
	assert.Equal(t, 20, limit)
	assert.Equal(t, 40, q.Offset)
}

func TestQueryBuilder_LimitClampedToMax(t *testing.T) {
	b := newTestBuilder(false)

	q, _, limit, err := b.Build(context.Background(), ListParams{Limit: "500"})
	require.NoError(t, err)

	assert.Equal(t, 100, limit)
	assert.Equal(t, 100, q.Limit)
}

func TestQueryBuilder_InvalidPaging(t *testing.T) {
	b := newTestBuilder(false)

	tests := []struct {
		name   string
		params ListParams
	}{
		{"non-numeric page", ListParams{Page: "abc"}},
		{"zero page", ListParams{Page: "0"}},
		{"negative page", ListParams{Page: "-1"}},
		{"non-numeric limit", ListParams{Limit: "ten"}},
		{"zero limit", ListParams{Limit: "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := b.Build(context.Background(), tt.params)
			assert.True(t, domain.IsInvalidQuery(err))
		})
	}
}

func TestQueryBuilder_CategoryAllDisablesFilter(t *testing.T) {
	b := newTestBuilder(false)

	for _, raw := range []string{"", "All", "all", "ALL"} {
		q, _, _, err := b.Build(context.Background(), ListParams{Category: raw})
		require.NoError(t, err)
		assert.Empty(t, q.Category)
	}
}

func TestQueryBuilder_CategoryCanonicalized(t *testing.T) {
	b := newTestBuilder(false)

	q, _, _, err := b.Build(context.Background(), ListParams{Category: "wisdom"})
	require.NoError(t, err)
	assert.Equal(t, "Wisdom", q.Category)
}

func TestQueryBuilder_UnknownCategoryRejected(t *testing.T) {
	b := newTestBuilder(false)

	_, _, _, err := b.Build(context.Background(), ListParams{Category: "Philosophy"})
	assert.True(t, domain.IsInvalidQuery(err))
}

func TestQueryBuilder_SortMostLikedBehindFlag(t *testing.T) {
	// Flag off: accepted but degrades to newest.
	q, _, _, err := newTestBuilder(false).Build(context.Background(), ListParams{Sort: "most-liked"})
	require.NoError(t, err)
	assert.Equal(t, ports.SortNewest, q.Sort)

	// Flag on: takes effect.
	q, _, _, err = newTestBuilder(true).Build(context.Background(), ListParams{Sort: "most-liked"})
	require.NoError(t, err)
	assert.Equal(t, ports.SortMostLiked, q.Sort)
}

func TestQueryBuilder_UnknownSortRejected(t *testing.T) {
	_, _, _, err := newTestBuilder(true).Build(context.Background(), ListParams{Sort: "oldest"})
	assert.True(t, domain.IsInvalidQuery(err))
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		pages int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single page", 5, 10, 1},
		{"empty", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, 1, tt.limit)
			assert.Equal(t, tt.pages, p.Pages)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}
