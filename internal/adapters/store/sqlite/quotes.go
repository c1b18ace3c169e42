package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/ports"
)

// QuoteStore implements ports.QuoteStore over SQLite.
type QuoteStore struct {
	db *sql.DB
}

var _ ports.QuoteStore = (*QuoteStore)(nil)

const quoteColumns = `q.id, q.text, q.author, q.category, q.tags, q.owner_id,
	COALESCE(u.name, ''), q.created_at, q.updated_at`

const quoteFrom = ` FROM quotes q LEFT JOIN users u ON u.id = q.owner_id`

// Create implements ports.QuoteStore.
func (s *QuoteStore) Create(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	tags, err := encodeTags(q.Tags)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quotes (id, text, author, category, tags, owner_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, q.Text, q.Author, string(q.Category), tags, q.OwnerID, now, now,
	)
	if err != nil {
		return nil, storeError("inserting quote", err)
	}

	return s.GetByID(ctx, id)
}

// GetByID implements ports.QuoteStore.
func (s *QuoteStore) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+quoteColumns+quoteFrom+` WHERE q.id = ?`, id)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("quote", id)
		}

		return nil, err
	}

	if err := s.loadLikes(ctx, []*domain.Quote{quote}); err != nil {
		return nil, err
	}

	return quote, nil
}

// Update implements ports.QuoteStore.
func (s *QuoteStore) Update(ctx context.Context, q *domain.Quote) (*domain.Quote, error) {
	tags, err := encodeTags(q.Tags)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE quotes SET text = ?, author = ?, category = ?, tags = ?, updated_at = ?
		 WHERE id = ?`,
		q.Text, q.Author, string(q.Category), tags, time.Now().UTC(), q.ID,
	)
	if err != nil {
		return nil, storeError("updating quote", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("updating quote", err)
	}

	if affected == 0 {
		return nil, domain.NewNotFoundError("quote", q.ID)
	}

	return s.GetByID(ctx, q.ID)
}

// Delete implements ports.QuoteStore.
func (s *QuoteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return storeError("deleting quote", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeError("deleting quote", err)
	}

	if affected == 0 {
		return domain.NewNotFoundError("quote", id)
	}

	return nil
}

// Find implements ports.QuoteStore.
func (s *QuoteStore) Find(ctx context.Context, query ports.QuoteQuery) ([]*domain.Quote, error) {
	where, args := buildFilter(query)

	var order string

	switch query.Sort {
	case ports.SortMostLiked:
		order = ` ORDER BY (SELECT COUNT(*) FROM quote_likes ql WHERE ql.quote_id = q.id) DESC,
			q.created_at DESC, q.rowid DESC`
	default:
		order = ` ORDER BY q.created_at DESC, q.rowid DESC`
	}

	sqlQuery := `SELECT ` + quoteColumns + quoteFrom + where + order

	// SQLite needs a LIMIT clause to accept OFFSET; -1 means unbounded.
	if query.Limit > 0 || query.Offset > 0 {
		limit := query.Limit
		if limit == 0 {
			limit = -1
		}

		sqlQuery += ` LIMIT ? OFFSET ?`
		args = append(args, limit, query.Offset)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, storeError("querying quotes", err)
	}
	defer rows.Close()

	quotes := make([]*domain.Quote, 0)

	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}

		quotes = append(quotes, quote)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterating quotes", err)
	}

	if err := s.loadLikes(ctx, quotes); err != nil {
		return nil, err
	}

	return quotes, nil
}

// Count implements ports.QuoteStore.
func (s *QuoteStore) Count(ctx context.Context, query ports.QuoteQuery) (int, error) {
	where, args := buildFilter(query)

	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*)`+quoteFrom+where, args...,
	).Scan(&count)
	if err != nil {
		return 0, storeError("counting quotes", err)
	}

	return count, nil
}

// QuoteAt implements ports.QuoteStore. Rowid order is the store's
// fixed ordering: stable across replicas and restarts.
func (s *QuoteStore) QuoteAt(ctx context.Context, index int) (*domain.Quote, error) {
	if index < 0 {
		return nil, domain.NewNotFoundError("quote", "")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+quoteColumns+quoteFrom+` ORDER BY q.rowid LIMIT 1 OFFSET ?`, index)

	quote, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("quote", "")
		}

		return nil, err
	}

	if err := s.loadLikes(ctx, []*domain.Quote{quote}); err != nil {
		return nil, err
	}

	return quote, nil
}

// Categories implements ports.QuoteStore.
func (s *QuoteStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM quotes ORDER BY category`)
	if err != nil {
		return nil, storeError("querying categories", err)
	}
	defer rows.Close()

	categories := make([]string, 0)

	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, storeError("scanning category", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("iterating categories", err)
	}

	return categories, nil
}

// ToggleLike implements ports.QuoteStore. The existence check, the
// flip, and the count run in one transaction.
func (s *QuoteStore) ToggleLike(ctx context.Context, quoteID, userID string) (int, error) {
	var count int

	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists int

		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM quotes WHERE id = ?`, quoteID).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.NewNotFoundError("quote", quoteID)
			}

			return storeError("checking quote", err)
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM quote_likes WHERE quote_id = ? AND user_id = ?`,
			quoteID, userID)
		if err != nil {
			return storeError("removing like", err)
		}

		removed, err := result.RowsAffected()
		if err != nil {
			return storeError("removing like", err)
		}

		if removed == 0 {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO quote_likes (quote_id, user_id) VALUES (?, ?)`,
				quoteID, userID)
			if err != nil {
				return storeError("adding like", err)
			}
		}

		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM quote_likes WHERE quote_id = ?`, quoteID).Scan(&count)
		if err != nil {
			return storeError("counting likes", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// loadLikes fills the Likes slice for each quote, oldest like first.
func (s *QuoteStore) loadLikes(ctx context.Context, quotes []*domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Quote, len(quotes))
	placeholders := make([]string, 0, len(quotes))
	args := make([]any, 0, len(quotes))

	for _, q := range quotes {
		byID[q.ID] = q
		placeholders = append(placeholders, "?")
		args = append(args, q.ID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT quote_id, user_id FROM quote_likes
		 WHERE quote_id IN (`+strings.Join(placeholders, ", ")+`)
		 ORDER BY rowid`, args...)
	if err != nil {
		return storeError("querying likes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var quoteID, userID string
		if err := rows.Scan(&quoteID, &userID); err != nil {
			return storeError("scanning like", err)
		}

		if q, ok := byID[quoteID]; ok {
			q.Likes = append(q.Likes, userID)
		}
	}

	if err := rows.Err(); err != nil {
		return storeError("iterating likes", err)
	}

	return nil
}

// buildFilter translates a query's filters to a WHERE clause.
func buildFilter(query ports.QuoteQuery) (string, []any) {
	clauses := make([]string, 0)
	args := make([]any, 0)

	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"

		clauses = append(clauses, `(LOWER(q.text) LIKE ? OR LOWER(q.author) LIKE ?)`)
		args = append(args, pattern, pattern)
	}

	if query.Category != "" {
		clauses = append(clauses, `q.category = ?`)
		args = append(args, query.Category)
	}

	if query.Owner != "" {
		clauses = append(clauses, `q.owner_id = ?`)
		args = append(args, query.Owner)
	}

	if query.LikedBy != "" {
		clauses = append(clauses,
			`EXISTS (SELECT 1 FROM quote_likes ql WHERE ql.quote_id = q.id AND ql.user_id = ?)`)
		args = append(args, query.LikedBy)
	}

	if query.IDs != nil {
		if len(query.IDs) == 0 {
			clauses = append(clauses, `1 = 0`)
		} else {
			placeholders := make([]string, len(query.IDs))
			for i, id := range query.IDs {
				placeholders[i] = "?"

				args = append(args, id)
			}

			clauses = append(clauses, `q.id IN (`+strings.Join(placeholders, ", ")+`)`)
		}
	}

	if len(clauses) == 0 {
		return "", args
	}

	return ` WHERE ` + strings.Join(clauses, " AND "), args
}

// rowScanner abstracts sql.Row and sql.Rows for scanQuote.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var (
		q        domain.Quote
		category string
		tags     string
	)

	err := row.Scan(&q.ID, &q.Text, &q.Author, &category, &tags,
		&q.OwnerID, &q.OwnerName, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return nil, storeError("scanning quote", err)
	}

	q.Category = domain.Category(category)

	if err := json.Unmarshal([]byte(tags), &q.Tags); err != nil {
		return nil, fmt.Errorf("decoding tags: %w", err)
	}

	return &q, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	encoded, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encoding tags: %w", err)
	}

	return string(encoded), nil
}
