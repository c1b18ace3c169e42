package dto

import (
	"time"

	"github.com/Deepika-Sisodia/quote-verse/internal/app"
	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

// CreateQuoteRequest is the payload for posting a new quote.
type CreateQuoteRequest struct {
	Text     string   `json:"text"     validate:"required,notblank,max=1000"`
	Author   string   `json:"author"   validate:"required,notblank,max=200"`
	Category string   `json:"category" validate:"omitempty,max=50"`
	Tags     []string `json:"tags"     validate:"omitempty,max=10,dive,notblank,max=50"`
}

// UpdateQuoteRequest is the payload for partially updating a quote.
// Absent fields are left untouched.
type UpdateQuoteRequest struct {
	Text     *string  `json:"text"     validate:"omitempty,notblank,max=1000"`
	Author   *string  `json:"author"   validate:"omitempty,notblank,max=200"`
	Category *string  `json:"category" validate:"omitempty,max=50"`
	Tags     []string `json:"tags"     validate:"omitempty,max=10,dive,notblank,max=50"`
}

// OwnerResponse identifies the user who posted a quote.
type OwnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// QuoteResponse is the API representation of a quote.
type QuoteResponse struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Author    string        `json:"author"`
	Category  string        `json:"category"`
	Tags      []string      `json:"tags"`
	Owner     OwnerResponse `json:"owner"`
	Likes     int           `json:"likes"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PaginationResponse describes one page of a listing.
type PaginationResponse struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// QuoteListResponse is one page of quotes with its envelope.
type QuoteListResponse struct {
	Quotes     []QuoteResponse    `json:"quotes"`
	Pagination PaginationResponse `json:"pagination"`
}

// LikeResponse reports the result of a like toggle.
type LikeResponse struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// QuoteOfDayResponse wraps the daily quote with its date.
type QuoteOfDayResponse struct {
	Date  string        `json:"date"`
	Quote QuoteResponse `json:"quote"`
}

// CategoriesResponse lists the categories currently in use.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// NewQuoteResponse converts a domain quote to its API representation.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	tags := q.Tags
	if tags == nil {
		tags = []string{}
	}

	return QuoteResponse{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.Author,
		Category: string(q.Category),
		Tags:     tags,
		Owner: OwnerResponse{
			ID:   q.OwnerID,
			Name: q.OwnerName,
		},
		Likes:     q.LikesCount(),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

// NewQuoteListResponse converts a page of quotes with its pagination.
func NewQuoteListResponse(quotes []*domain.Quote, page app.Pagination) QuoteListResponse {
	items := make([]QuoteResponse, 0, len(quotes))

	for _, q := range quotes {
		items = append(items, NewQuoteResponse(q))
	}

	return QuoteListResponse{
		Quotes: items,
		Pagination: PaginationResponse{
			Total: page.Total,
			Page:  page.Page,
			Limit: page.Limit,
			Pages: page.Pages,
		},
	}
}

// NewQuoteListFromSlice wraps an unpaginated quote list, for endpoints
// like favorites that return the full set.
func NewQuoteListFromSlice(quotes []*domain.Quote) []QuoteResponse {
	items := make([]QuoteResponse, 0, len(quotes))

	for _, q := range quotes {
		items = append(items, NewQuoteResponse(q))
	}

	return items
}
