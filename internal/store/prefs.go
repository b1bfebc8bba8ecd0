package store

import (
	"database/sql"
	"fmt"
	"strings"

	"sports-arb-api/internal/oddsmath"
)

// Preferences are a user's arbitrage display settings.
type Preferences struct {
	UserID       string             `json:"user_id"`
	MinROIBps    int                `json:"min_roi_bps"`
	DefaultStake float64            `json:"default_stake"`
	RoundMode    oddsmath.RoundMode `json:"round_mode"`
	EnabledBooks []string           `json:"enabled_books"` // empty = all books
}

// DefaultPreferences returns the settings used before a user saves any.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:       userID,
		MinROIBps:    0,
		DefaultStake: 200,
		RoundMode:    oddsmath.RoundDollar,
	}
}

// Validate checks preference values before they are persisted.
func (p Preferences) Validate() error {
	if p.MinROIBps < 0 {
		return fmt.Errorf("min_roi_bps must be non-negative, got %d", p.MinROIBps)
	}
	if p.DefaultStake <= 0 {
		return fmt.Errorf("default_stake must be positive, got %f", p.DefaultStake)
	}
	if p.RoundMode != oddsmath.RoundDollar && p.RoundMode != oddsmath.RoundCent {
		return fmt.Errorf("round_mode must be %q or %q, got %q",
			oddsmath.RoundDollar, oddsmath.RoundCent, p.RoundMode)
	}
	return nil
}

// BookEnabled reports whether a sportsbook passes the user's book filter.
func (p Preferences) BookEnabled(book string) bool {
	if len(p.EnabledBooks) == 0 {
		return true
	}
	for _, b := range p.EnabledBooks {
		if b == book {
			return true
		}
	}
	return false
}

// GetPreferences returns the stored preferences, or defaults if unset.
func (d *DB) GetPreferences(userID string) (Preferences, error) {
	row := d.db.QueryRow(`
		SELECT user_id, min_roi_bps, default_stake, round_mode, enabled_books
		FROM preferences WHERE user_id = ?
	`, userID)

	var prefs Preferences
	var mode, books string
	err := row.Scan(&prefs.UserID, &prefs.MinROIBps, &prefs.DefaultStake, &mode, &books)
	if err == sql.ErrNoRows {
		return DefaultPreferences(userID), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("scanning preferences: %w", err)
	}

	prefs.RoundMode = oddsmath.RoundMode(mode)
	if books != "" {
		prefs.EnabledBooks = strings.Split(books, ",")
	}
	return prefs, nil
}

// UpdatePreferences validates and upserts a user's preferences.
func (d *DB) UpdatePreferences(prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}

	_, err := d.db.Exec(`
		INSERT INTO preferences (user_id, min_roi_bps, default_stake, round_mode, enabled_books, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			min_roi_bps = excluded.min_roi_bps,
			default_stake = excluded.default_stake,
			round_mode = excluded.round_mode,
			enabled_books = excluded.enabled_books,
			updated_at = CURRENT_TIMESTAMP
	`, prefs.UserID, prefs.MinROIBps, prefs.DefaultStake, string(prefs.RoundMode),
		strings.Join(prefs.EnabledBooks, ","))
	if err != nil {
		return fmt.Errorf("upserting preferences: %w", err)
	}
	return nil
}
