package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// UserStore implements ports.UserStore over an in-process DB.
type UserStore struct {
	db *DB
}

var _ ports.UserStore = (*UserStore)(nil)

// Create implements ports.UserStore.
func (s *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.users {
		if existing.Email == u.Email {
			return nil, domain.NewConflictError("user", "email already registered")
		}

		if existing.Username == u.Username {
			return nil, domain.NewConflictError("user", "username already taken")
		}
	}

	stored := cloneUser(u)
	stored.ID = uuid.NewString()
	stored.CreatedAt = s.db.now()
	stored.UpdatedAt = stored.CreatedAt

	s.db.users = append(s.db.users, stored)

	return cloneUser(stored), nil
}

// GetByID implements ports.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u := s.db.findUserLocked(id)
	if u == nil {
		return nil, domain.NewNotFoundError("user", id)
	}

	return cloneUser(u), nil
}

// GetByEmail implements ports.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, u := range s.db.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}

	return nil, domain.NewNotFoundError("user", "")
}

// ToggleFavorite implements ports.UserStore.
func (s *UserStore) ToggleFavorite(ctx context.Context, userID, quoteID string) ([]string, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	u := s.db.findUserLocked(userID)
	if u == nil {
		return nil, domain.NewNotFoundError("user", userID)
	}

	u.Favorites = domain.Toggle(u.Favorites, quoteID)
	u.UpdatedAt = s.db.now()

	return append([]string(nil), u.Favorites...), nil
}
