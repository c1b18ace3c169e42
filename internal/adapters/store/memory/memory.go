// Package memory provides an in-process store used for local
// development and tests. It implements the same port contracts as the
// SQLite adapter, including the fixed insertion ordering the daily
// selection depends on.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

// DB holds quotes and users behind a single lock. The quote and user
// stores are views over the same DB so owner names resolve without a
// second adapter.
//
// The quotes slice preserves insertion order; QuoteAt indexes into it.
type DB struct {
	mu sync.RWMutex

	quotes []*domain.Quote
	users  []*domain.User

	// now is swappable for tests.
	now func() time.Time
}

// New creates an empty database.
func New() *DB {
	return &DB{now: time.Now}
}

// Quotes returns the quote store view.
func (d *DB) Quotes() *QuoteStore {
	return &QuoteStore{db: d}
}

// Users returns the user store view.
func (d *DB) Users() *UserStore {
	return &UserStore{db: d}
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string {
	return "store"
}

// Check implements ports.HealthChecker. The in-process store has no
// external dependency, so it is healthy whenever it is reachable.
func (d *DB) Check(ctx context.Context) error {
	return ctx.Err()
}

func (d *DB) findQuoteLocked(id string) *domain.Quote {
	for _, q := range d.quotes {
		if q.ID == id {
			return q
		}
	}

	return nil
}

func (d *DB) findUserLocked(id string) *domain.User {
	for _, u := range d.users {
		if u.ID == id {
			return u
		}
	}

	return nil
}

func (d *DB) ownerNameLocked(ownerID string) string {
	if u := d.findUserLocked(ownerID); u != nil {
		return u.Name
	}

	return ""
}

func cloneQuote(q *domain.Quote) *domain.Quote {
	c := *q
	c.Tags = append([]string(nil), q.Tags...)
	c.Likes = append([]string(nil), q.Likes...)

	return &c
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Favorites = append([]string(nil), u.Favorites...)

	return &c
}
