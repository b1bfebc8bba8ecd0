package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB handles favorites, betslips and preference storage.
type DB struct {
	db *sql.DB
}

// NewDB opens (or creates) the database at dbPath. Use ":memory:" in tests.
func NewDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		sport TEXT NOT NULL,
		event_name TEXT NOT NULL,
		market TEXT NOT NULL,
		line REAL NOT NULL,
		over_book TEXT NOT NULL,
		over_odds INTEGER NOT NULL,
		under_book TEXT NOT NULL,
		under_odds INTEGER NOT NULL,
		roi_bps INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id);

	CREATE TABLE IF NOT EXISTS betslips (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_betslips_user ON betslips(user_id);

	CREATE TABLE IF NOT EXISTS betslip_legs (
		id TEXT PRIMARY KEY,
		betslip_id TEXT NOT NULL REFERENCES betslips(id) ON DELETE CASCADE,
		event_id TEXT NOT NULL,
		market TEXT NOT NULL,
		selection TEXT NOT NULL,
		prices TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_betslip_legs_slip ON betslip_legs(betslip_id);

	CREATE TABLE IF NOT EXISTS preferences (
		user_id TEXT PRIMARY KEY,
		min_roi_bps INTEGER NOT NULL,
		default_stake REAL NOT NULL,
		round_mode TEXT NOT NULL,
		enabled_books TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}
