package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/venatus57/autoanalyseur/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the history database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS listings (
			id TEXT PRIMARY KEY,
			saved_at DATETIME NOT NULL,
			make TEXT NOT NULL,
			model TEXT NOT NULL,
			year INTEGER NOT NULL DEFAULT 0,
			mileage_km INTEGER NOT NULL DEFAULT 0,
			price_eur INTEGER NOT NULL DEFAULT 0,
			engine_variant TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_saved_at ON listings(saved_at)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_make ON listings(make)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save persists a listing, skipping entries without a make or price and
// exact duplicates. The history is capped at MaxEntries, oldest out.
func (s *SQLiteStore) Save(ctx context.Context, listing model.HistoricalListing) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	entry := normalizeEntry(listing)
	if entry.Make == "" || entry.PriceEUR <= 0 {
		return false, nil
	}

	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM listings WHERE make = ? AND model = ? AND year = ? AND price_eur = ? AND mileage_km = ?`,
		entry.Make, entry.Model, entry.Year, entry.PriceEUR, entry.MileageKm,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for duplicate listing: %w", err)
	}
	if exists > 0 {
		return false, nil
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.SavedAt.IsZero() {
		entry.SavedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO listings (id, saved_at, make, model, year, mileage_km, price_eur, engine_variant, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SavedAt, entry.Make, entry.Model, entry.Year,
		entry.MileageKm, entry.PriceEUR, entry.EngineVariant, entry.Description,
	)
	if err != nil {
		return false, fmt.Errorf("failed to save listing: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM listings WHERE id IN (
			SELECT id FROM listings ORDER BY saved_at DESC, id DESC LIMIT -1 OFFSET ?
		)`, MaxEntries)
	if err != nil {
		return false, fmt.Errorf("failed to trim history: %w", err)
	}

	return true, nil
}

// FindSimilar returns stored listings for the same vehicle family.
func (s *SQLiteStore) FindSimilar(ctx context.Context, make, mdl string, year int) ([]model.HistoricalListing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	entries, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	var matches []model.HistoricalListing
	for _, e := range entries {
		if matchesSimilar(e, make, mdl, year) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// AveragePrice aggregates prices over similar listings.
func (s *SQLiteStore) AveragePrice(ctx context.Context, make, mdl string, year int) (*PriceStats, error) {
	matches, err := s.FindSimilar(ctx, make, mdl, year)
	if err != nil {
		return nil, err
	}
	return priceStats(matches), nil
}

// All returns every stored listing, oldest first.
func (s *SQLiteStore) All(ctx context.Context) ([]model.HistoricalListing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, saved_at, make, model, year, mileage_km, price_eur, engine_variant, description
		 FROM listings ORDER BY saved_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.HistoricalListing
	for rows.Next() {
		var e model.HistoricalListing
		if err := rows.Scan(&e.ID, &e.SavedAt, &e.Make, &e.Model, &e.Year,
			&e.MileageKm, &e.PriceEUR, &e.EngineVariant, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}
	return entries, nil
}

// Replace swaps the whole history for the given entries.
func (s *SQLiteStore) Replace(ctx context.Context, listings []model.HistoricalListing) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("failed to clear listings: %w", err)
	}

	for _, l := range listings {
		entry := normalizeEntry(l)
		if entry.ID == "" {
			entry.ID = uuid.New().String()
		}
		if entry.SavedAt.IsZero() {
			entry.SavedAt = time.Now().UTC()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO listings (id, saved_at, make, model, year, mileage_km, price_eur, engine_variant, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.SavedAt, entry.Make, entry.Model, entry.Year,
			entry.MileageKm, entry.PriceEUR, entry.EngineVariant, entry.Description,
		); err != nil {
			return fmt.Errorf("failed to insert listing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// Stats summarizes the stored history.
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	entries, err := s.All(ctx)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(entries), nil
}

// Clear removes every entry.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
