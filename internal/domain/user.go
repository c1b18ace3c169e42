package domain

import (
	"strings"
	"time"
)

// User is a registered account.
// PasswordHash is a one-way bcrypt hash; the plaintext password never
// appears on this type.
type User struct {
	// ID is the store-assigned identifier.
	ID string

	// Username is globally unique, stored trimmed.
	Username string

	// Name is the display name.
	Name string

	// Email is globally unique, stored trimmed and lowercased.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Favorites holds the IDs of quotes the user has favorited.
	// Insertion order is preserved; an ID appears at most once.
	Favorites []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeUser applies the storage normalization rules in place:
// username and name are trimmed, email is trimmed and lowercased.
func NormalizeUser(u *User) {
	u.Username = strings.TrimSpace(u.Username)
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}

// Validate checks the user's creation invariants.
// Normalization is expected to have run first.
func (u *User) Validate() error {
	if u.Username == "" {
		return NewValidationError("username", "cannot be empty")
	}

	if u.Email == "" {
		return NewValidationError("email", "cannot be empty")
	}

	if u.PasswordHash == "" {
		return NewValidationError("password", "cannot be empty")
	}

	return nil
}
