package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sports-arb-api/internal/arb"
)

// Favorite is a saved arbitrage opportunity.
type Favorite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Sport     string    `json:"sport"`
	EventName string    `json:"event_name"`
	Market    string    `json:"market"`
	Line      float64   `json:"line"`
	Over      arb.Leg   `json:"over"`
	Under     arb.Leg   `json:"under"`
	ROIBps    int       `json:"roi_bps"`
	CreatedAt time.Time `json:"created_at"`
}

// AddFavorite stores a favorite and returns its generated ID.
func (d *DB) AddFavorite(fav Favorite) (string, error) {
	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}

	_, err := d.db.Exec(`
		INSERT INTO favorites (id, user_id, sport, event_name, market, line,
			over_book, over_odds, under_book, under_odds, roi_bps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, fav.ID, fav.UserID, fav.Sport, fav.EventName, fav.Market, fav.Line,
		fav.Over.Book, fav.Over.AmericanOdds, fav.Under.Book, fav.Under.AmericanOdds, fav.ROIBps)
	if err != nil {
		return "", fmt.Errorf("inserting favorite: %w", err)
	}

	return fav.ID, nil
}

// GetFavorites retrieves all favorites for a user, newest first.
func (d *DB) GetFavorites(userID string) ([]Favorite, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, sport, event_name, market, line,
			over_book, over_odds, under_book, under_odds, roi_bps, created_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	var favorites []Favorite
	for rows.Next() {
		var fav Favorite
		if err := rows.Scan(&fav.ID, &fav.UserID, &fav.Sport, &fav.EventName, &fav.Market, &fav.Line,
			&fav.Over.Book, &fav.Over.AmericanOdds, &fav.Under.Book, &fav.Under.AmericanOdds,
			&fav.ROIBps, &fav.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning favorite row: %w", err)
		}
		favorites = append(favorites, fav)
	}

	return favorites, rows.Err()
}

// DeleteFavorite removes one of a user's favorites. Returns sql.ErrNoRows if
// the favorite does not exist or belongs to someone else.
func (d *DB) DeleteFavorite(userID, id string) error {
	result, err := d.db.Exec("DELETE FROM favorites WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
