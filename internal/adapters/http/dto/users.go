package dto

import (
	"time"

	"github.com/Deepika-Sisodia/quote-verse/internal/app"
	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

// SignupRequest is the payload for registering an account.
type SignupRequest struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=30"`
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the API representation of a user.
// The password hash never leaves the server.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Favorites []string  `json:"favorites"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse carries a signed token and the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse is the current user with activity counts: quotes
// posted, likes received on them, and favorites saved.
type ProfileResponse struct {
	User          UserResponse `json:"user"`
	QuoteCount    int          `json:"totalQuotes"`
	LikeCount     int          `json:"totalLikes"`
	FavoriteCount int          `json:"totalFavorites"`
}

// FavoriteToggleResponse reports the result of a favorite toggle.
type FavoriteToggleResponse struct {
	Favorites []string `json:"favorites"`
	Favorited bool     `json:"favorited"`
}

// QuotesResponse wraps a plain list of quotes.
type QuotesResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// NewUserResponse converts a domain user to its API representation.
func NewUserResponse(u *domain.User) UserResponse {
	favorites := u.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favorites,
		CreatedAt: u.CreatedAt,
	}
}

// NewProfileResponse converts a profile to its API representation.
func NewProfileResponse(p *app.Profile) ProfileResponse {
	return ProfileResponse{
		User:          NewUserResponse(p.User),
		QuoteCount:    p.QuoteCount,
		LikeCount:     p.LikeCount,
		FavoriteCount: p.FavoriteCount,
	}
}
