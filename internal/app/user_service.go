package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/auth"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

// UserService orchestrates account and favorites use cases.
type UserService struct {
	users  ports.UserStore
	quotes ports.QuoteStore
	tokens *auth.TokenManager
	hasher *auth.Hasher
	logger *slog.Logger
}

// UserServiceConfig contains configuration for the user service.
type UserServiceConfig struct {
	Users  ports.UserStore
	Quotes ports.QuoteStore
	Tokens *auth.TokenManager
	Hasher *auth.Hasher
	Logger *slog.Logger
}

// NewUserService creates a new user service with the provided dependencies.
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		users:  cfg.Users,
		quotes: cfg.Quotes,
		tokens: cfg.Tokens,
		hasher: cfg.Hasher,
		logger: cfg.Logger,
	}
}

// SignupInput carries the fields required to register an account.
type SignupInput struct {
	Username string
	Name     string
	Email    string
	Password string
}

// Profile is a user together with derived activity counts: quotes
// posted, likes received across them, and favorites saved.
type Profile struct {
	User          *domain.User
	QuoteCount    int
	LikeCount     int
	FavoriteCount int
}

// Signup registers a new account and returns it with a signed token.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*domain.User, string, error) {
	if len(in.Password) < MinPasswordLength {
		return nil, "", domain.NewValidationError("password", "must be at least 6 characters")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}

	domain.NormalizeUser(user)

	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.InfoContext(ctx, "registered user",
		slog.String("user_id", created.ID),
		slog.String("username", created.Username),
	)

	return created, token, nil
}

// Login authenticates by email and password and returns the user with
// a signed token. A missing account and a wrong password are both
// reported as unauthorized, never as not-found.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", domain.NewUnauthorizedError("invalid credentials")
		}

		return nil, "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetProfile returns the user together with activity counts: the
// number of quotes the user has posted, the likes received across
// those quotes, and the favorites saved. The user lookup and the
// owned-quote scan run concurrently.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, owned, err := Parallel2(ctx,
		func(ctx context.Context) (*domain.User, error) {
			return s.users.GetByID(ctx, userID)
		},
		func(ctx context.Context) ([]*domain.Quote, error) {
			return s.quotes.Find(ctx, ports.QuoteQuery{Owner: userID})
		},
	)
	if err != nil {
		return nil, err
	}

	likes := 0
	for _, q := range owned {
		likes += q.LikesCount()
	}

	return &Profile{
		User:          user,
		QuoteCount:    len(owned),
		LikeCount:     likes,
		FavoriteCount: len(user.Favorites),
	}, nil
}

// ToggleFavorite flips quoteID's membership in the user's favorites
// and returns the resulting list plus whether it is now a favorite.
// The quote must exist.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, quoteID string) ([]string, bool, error) {
	if err := validateID("quote", quoteID); err != nil {
		return nil, false, err
	}

	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return nil, false, err
	}

	favorites, err := s.users.ToggleFavorite(ctx, userID, quoteID)
	if err != nil {
		return nil, false, err
	}

	return favorites, domain.Contains(favorites, quoteID), nil
}

// Favorites returns the user's favorited quotes in favorites order.
func (s *UserService) Favorites(ctx context.Context, userID string) ([]*domain.Quote, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(user.Favorites) == 0 {
		return []*domain.Quote{}, nil
	}

	quotes, err := s.quotes.Find(ctx, ports.QuoteQuery{IDs: user.Favorites})
	if err != nil {
		return nil, err
	}

	return orderByIDs(quotes, user.Favorites), nil
}

// Liked returns the quotes the user has liked, newest first.
func (s *UserService) Liked(ctx context.Context, userID string) ([]*domain.Quote, error) {
	return s.quotes.Find(ctx, ports.QuoteQuery{LikedBy: userID})
}

// orderByIDs reorders quotes to match the given id sequence.
// Ids with no matching quote (deleted since favorited) are skipped.
func orderByIDs(quotes []*domain.Quote, ids []string) []*domain.Quote {
	byID := make(map[string]*domain.Quote, len(quotes))
	for _, q := range quotes {
		byID[q.ID] = q
	}

	ordered := make([]*domain.Quote, 0, len(ids))

	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}

	return ordered
}
