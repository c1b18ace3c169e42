package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// UserStore implements ports.UserStore over SQLite.
type UserStore struct {
	db *sql.DB
}

var _ ports.UserStore = (*UserStore)(nil)

const userColumns = `id, username, name, email, password_hash, created_at, updated_at`

// Create implements ports.UserStore.
func (s *UserStore) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, name, email, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, u.Username, u.Name, u.Email, u.PasswordHash, now, now,
	)
	if err != nil {
		if isConstraintViolation(err) {
			return nil, domain.NewConflictError("user", "username or email already taken")
		}

		return nil, storeError("inserting user", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID implements ports.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", id)
		}

		return nil, err
	}

	if err := s.loadFavorites(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail implements ports.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user", "")
		}

		return nil, err
	}

	if err := s.loadFavorites(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ToggleFavorite implements ports.UserStore. The existence check, the
// flip, and the list read run in one transaction.
func (s *UserStore) ToggleFavorite(ctx context.Context, userID, quoteID string) ([]string, error) {
	var favorites []string

	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists int

		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM users WHERE id = ?`, userID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewNotFoundError("user", userID)
			}

			return storeError("checking user", err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM user_favorites WHERE user_id = ? AND quote_id = ?`,
			userID, quoteID)
		if err != nil {
			return storeError("removing favorite", err)
		}

		removed, err := result.RowsAffected()
		if err != nil {
			return storeError("removing favorite", err)
		}

		if removed == 0 {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO user_favorites (user_id, quote_id) VALUES (?, ?)`,
				userID, quoteID)
			if err != nil {
				return storeError("adding favorite", err)
			}
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT quote_id FROM user_favorites WHERE user_id = ? ORDER BY rowid`, userID)
		if err != nil {
			return storeError("querying favorites", err)
		}
		defer rows.Close()

		favorites = make([]string, 0)

		for rows.Next() {
			var quoteID string
			if err := rows.Scan(&quoteID); err != nil {
				return storeError("scanning favorite", err)
			}

			favorites = append(favorites, quoteID)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return favorites, nil
}

// loadFavorites fills the user's favorites, oldest first.
func (s *UserStore) loadFavorites(ctx context.Context, user *domain.User) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT quote_id FROM user_favorites WHERE user_id = ? ORDER BY rowid`, user.ID)
	if err != nil {
		return storeError("querying favorites", err)
	}
	defer rows.Close()

	user.Favorites = make([]string, 0)

	for rows.Next() {
		var quoteID string
		if err := rows.Scan(&quoteID); err != nil {
			return storeError("scanning favorite", err)
		}

		user.Favorites = append(user.Favorites, quoteID)
	}

	if err := rows.Err(); err != nil {
		return storeError("iterating favorites", err)
	}

	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User

	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return nil, storeError("scanning user", err)
	}

	return &u, nil
}
