package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/store/memory"
	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

func newTestQuoteService(t *testing.T, mostLiked bool) (*QuoteService, *memory.DB) {
	t.Helper()

	db := memory.New()
	logger := discardLogger()

	return NewQuoteService(QuoteServiceConfig{
		Store:   db.Quotes(),
		Queries: newTestBuilder(mostLiked),
		Daily:   NewDailySelector(db.Quotes(), logger, nil),
		Logger:  logger,
	}), db
}

func TestQuoteService_CreateAndGet(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", CreateQuoteInput{
		Text:     "Talk is cheap. Show me the code.",
		Author:   "Linus Torvalds",
		Category: "wisdom",
		Tags:     []string{"programming"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWisdom, created.Category)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestQuoteService_CreateUnknownCategoryBecomesOther(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)

	created, err := svc.Create(context.Background(), "owner-1", CreateQuoteInput{
		Text:     "text",
		Author:   "author",
		Category: "philosophy",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, created.Category)
}

func TestQuoteService_CreateValidation(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)

	_, err := svc.Create(context.Background(), "owner-1", CreateQuoteInput{
		Text:   "   ",
		Author: "someone",
	})
	assert.True(t, domain.IsValidation(err))
}

func TestQuoteService_GetRejectsMalformedID(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.True(t, domain.IsInvalidID(err))
	assert.False(t, domain.IsNotFound(err))
}

func TestQuoteService_GetMissing(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)

	_, err := svc.Get(context.Background(), uuid.NewString())
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteService_List(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)
	ctx := context.Background()

	for _, text := range []string{"alpha", "beta", "gamma"} {
		_, err := svc.Create(ctx, "owner-1", CreateQuoteInput{Text: text, Author: "a"})
		require.NoError(t, err)
	}

	quotes, page, err := svc.List(ctx, ListParams{Limit: "2"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "gamma", quotes[0].Text)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 1, page.Page)
}

func TestQuoteService_ListInvalidParams(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)

	_, _, err := svc.List(context.Background(), ListParams{Page: "zero"})
	assert.True(t, domain.IsInvalidQuery(err))
}

func TestQuoteService_UpdateOwnerOnly(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", CreateQuoteInput{Text: "before", Author: "a"})
	require.NoError(t, err)

	newText := "after"

	_, err = svc.Update(ctx, created.ID, "someone-else", UpdateQuoteInput{Text: &newText})
	assert.True(t, domain.IsForbidden(err))

	updated, err := svc.Update(ctx, created.ID, "owner-1", UpdateQuoteInput{Text: &newText})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Text)
	assert.Equal(t, "a", updated.Author)
}

func TestQuoteService_DeleteOwnerOnly(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", CreateQuoteInput{Text: "t", Author: "a"})
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID, "someone-else")
	assert.True(t, domain.IsForbidden(err))

	require.NoError(t, svc.Delete(ctx, created.ID, "owner-1"))

	_, err = svc.Get(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteService_ToggleLike(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)
	ctx := context.Background()

	created, err := svc.Create(ctx, "owner-1", CreateQuoteInput{Text: "t", Author: "a"})
	require.NoError(t, err)

	count, liked, err := svc.ToggleLike(ctx, created.ID, "fan-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, liked)

	count, liked, err = svc.ToggleLike(ctx, created.ID, "fan-1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.False(t, liked)
}

func TestQuoteService_ListCategories(t *testing.T) {
	svc, _ := newTestQuoteService(t, false)
	ctx := context.Background()

	_, err := svc.Create(ctx, "o", CreateQuoteInput{Text: "t", Author: "a", Category: "Funny"})
	require.NoError(t, err)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Funny"}, categories)
}
