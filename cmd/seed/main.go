// Package main provides the seed CLI, which loads quotes from a JSON
// file into a SQLite database.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Deepika-Sisodia/quote-verse/internal/adapters/store/sqlite"
	"github.com/Deepika-Sisodia/quote-verse/internal/app"
	"github.com/Deepika-Sisodia/quote-verse/internal/domain"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/auth"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/config"
	"github.com/Deepika-Sisodia/quote-verse/internal/platform/logging"
)

// seedQuote is the JSON shape of one entry in the seed file.
type seedQuote struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

type seedOptions struct {
	file     string
	dbPath   string
	username string
	email    string
	password string
	workers  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Load quotes from a JSON file into the database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON file of quotes to load (required)")
	cmd.Flags().StringVar(&opts.dbPath, "db", "./data/quotes.db", "SQLite database file")
	cmd.Flags().StringVar(&opts.username, "owner-username", "seed", "username owning the seeded quotes")
	cmd.Flags().StringVar(&opts.email, "owner-email", "seed@localhost", "email of the owning user")
	cmd.Flags().StringVar(&opts.password, "owner-password", "", "password for the owning user, created if absent (required)")
	cmd.Flags().IntVar(&opts.workers, "workers", 4, "number of concurrent insert workers")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("owner-password")

	return cmd
}

func runSeed(ctx context.Context, opts seedOptions) error {
	logger := logging.New(logging.Config{
		Level:   "info",
		Format:  "pretty",
		Service: "quote-verse-seed",
		Version: "dev",
	})
	logging.SetDefault(logger)

	quotes, err := loadSeedFile(opts.file)
	if err != nil {
		return err
	}

	if len(quotes) == 0 {
		logger.Warn("seed file contains no quotes", slog.String("file", opts.file))

		return nil
	}

	db, err := sqlite.Open(opts.dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	owner, err := ensureOwner(ctx, db, opts)
	if err != nil {
		return err
	}

	err = app.FanOut(ctx, opts.workers, quotes, func(ctx context.Context, sq seedQuote) error {
		_, createErr := db.Quotes().Create(ctx, &domain.Quote{
			Text:     sq.Text,
			Author:   sq.Author,
			Category: domain.ParseCategory(sq.Category),
			Tags:     sq.Tags,
			OwnerID:  owner.ID,
		})

		return createErr
	})
	if err != nil {
		return fmt.Errorf("inserting quotes: %w", err)
	}

	logger.Info("seeding complete",
		slog.Int("quotes", len(quotes)),
		slog.String("owner", owner.Username),
		slog.String("db", opts.dbPath),
	)

	return nil
}

// loadSeedFile reads and decodes the JSON quote file.
func loadSeedFile(path string) ([]seedQuote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var quotes []seedQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, q := range quotes {
		if q.Text == "" || q.Author == "" {
			return nil, fmt.Errorf("seed entry %d: text and author are required", i)
		}
	}

	return quotes, nil
}

// ensureOwner finds or creates the user that owns the seeded quotes.
func ensureOwner(ctx context.Context, db *sqlite.DB, opts seedOptions) (*domain.User, error) {
	owner, err := db.Users().GetByEmail(ctx, opts.email)
	if err == nil {
		return owner, nil
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up owner: %w", err)
	}

	hasher := auth.NewHasher(config.DefaultBcryptCost)

	hash, err := hasher.Hash(opts.password)
	if err != nil {
		return nil, fmt.Errorf("hashing owner password: %w", err)
	}

	user := &domain.User{
		Username:     opts.username,
		Name:         opts.username,
		Email:        opts.email,
		PasswordHash: hash,
	}
	domain.NormalizeUser(user)

	owner, err = db.Users().Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("creating owner: %w", err)
	}

	return owner, nil
}
