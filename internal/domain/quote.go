// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Category classifies a quote. The set is closed; unknown values are
// normalized to CategoryOther at creation time.
type Category string

// Known quote categories.
const (
	CategoryInspirational Category = "Inspirational"
	CategoryLife          Category = "Life"
	CategorySuccess       Category = "Success"
	CategoryFunny         Category = "Funny"
	CategoryWisdom        Category = "Wisdom"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryInspirational,
		CategoryLife,
		CategorySuccess,
		CategoryFunny,
		CategoryWisdom,
		CategoryOther,
	}
}

// ParseCategory maps a raw string to a Category.
// Matching is case-insensitive; anything unrecognized becomes CategoryOther.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}

	return CategoryOther
}

// IsValidCategory reports whether s names a known category exactly.
func IsValidCategory(s string) bool {
	for _, c := range Categories() {
		if s == string(c) {
			return true
		}
	}

	return false
}

// Quote is a quotation posted by a user.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the store-assigned identifier.
	ID string

	// Text is the body of the quote. Never empty.
	Text string

	// Author is who said or wrote the quote. Never empty.
	Author string

	// Category classifies the quote.
	Category Category

	// Tags are free-form labels, order preserved.
	Tags []string

	// OwnerID references the user who posted the quote.
	// Required and immutable after creation.
	OwnerID string

	// OwnerName is the owner's display name, resolved by the store
	// when the quote is read.
	OwnerName string

	// Likes holds the IDs of users who liked the quote.
	// Insertion order is preserved; an ID appears at most once.
	Likes []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikesCount returns the number of likes on the quote.
func (q *Quote) LikesCount() int {
	return len(q.Likes)
}

// LikedBy reports whether the given user has liked the quote.
func (q *Quote) LikedBy(userID string) bool {
	return Contains(q.Likes, userID)
}

// Validate checks the quote's creation invariants.
func (q *Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("text", "cannot be empty")
	}

	if strings.TrimSpace(q.Author) == "" {
		return NewValidationError("author", "cannot be empty")
	}

	if q.OwnerID == "" {
		return NewValidationError("owner", "is required")
	}

	return nil
}
