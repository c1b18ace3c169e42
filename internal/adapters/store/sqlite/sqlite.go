// Package sqlite provides the durable store adapter backed by SQLite.
//
// Like toggles and favorite toggles run inside transactions so two
// concurrent flips cannot lose an update. Ordinal quote lookup uses the
// table's rowid, which gives every replica the same fixed ordering.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
)

//go:embed schema.sql
var schema string

// DB wraps the SQLite connection. The quote and user stores are views
// over the same DB so owner names resolve with a single join.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Foreign keys are enabled per connection. Transactions begin
// in immediate mode: a deferred transaction that reads before writing
// cannot upgrade its lock while another writer holds one, and SQLite
// reports that deadlock as SQLITE_BUSY without consulting the busy
// timeout. Taking the write lock up front makes concurrent toggles
// queue on the busy timeout instead.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Quotes returns the quote store view.
func (d *DB) Quotes() *QuoteStore {
	return &QuoteStore{db: d.db}
}

// Users returns the user store view.
func (d *DB) Users() *UserStore {
	return &UserStore{db: d.db}
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string {
	return "sqlite"
}

// Check implements ports.HealthChecker.
func (d *DB) Check(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return domain.NewUnavailableError("sqlite", err.Error())
	}

	return nil
}

// isConstraintViolation reports whether err is a uniqueness violation.
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	return false
}

// storeError maps a driver failure to domain.ErrUnavailable so callers
// surface it as a store outage. NotFound and Conflict are decided
// before reaching here.
func storeError(op string, err error) error {
	return domain.NewUnavailableError("sqlite", fmt.Sprintf("%s: %v", op, err))
}

// inTx runs fn inside a transaction, rolling back on error.
func inTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("beginning transaction", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return storeError("committing transaction", err)
	}

	return nil
}
