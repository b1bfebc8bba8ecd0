package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sports-arb-api/internal/parlay"
)

// Betslip is a named collection of parlay legs.
type Betslip struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Name      string       `json:"name"`
	Legs      []BetslipLeg `json:"legs"`
	CreatedAt time.Time    `json:"created_at"`
}

// BetslipLeg is one stored selection. Prices carries the per-book American
// odds snapshot taken when the leg was added.
type BetslipLeg struct {
	ID        string         `json:"id"`
	EventID   string         `json:"event_id"`
	Market    string         `json:"market"`
	Selection string         `json:"selection"`
	Prices    map[string]int `json:"prices"`
	CreatedAt time.Time      `json:"created_at"`
}

// ParlayLegs converts stored legs to the pricing representation.
func (b Betslip) ParlayLegs() []parlay.Leg {
	legs := make([]parlay.Leg, len(b.Legs))
	for i, leg := range b.Legs {
		legs[i] = parlay.Leg{
			EventID:   leg.EventID,
			Market:    leg.Market,
			Selection: leg.Selection,
			Prices:    leg.Prices,
		}
	}
	return legs
}

// CreateBetslip stores an empty named slip and returns its ID.
func (d *DB) CreateBetslip(userID, name string) (string, error) {
	id := uuid.NewString()
	_, err := d.db.Exec(`
		INSERT INTO betslips (id, user_id, name) VALUES (?, ?, ?)
	`, id, userID, name)
	if err != nil {
		return "", fmt.Errorf("inserting betslip: %w", err)
	}
	return id, nil
}

// GetBetslips retrieves all of a user's slips with their legs, newest first.
func (d *DB) GetBetslips(userID string) ([]Betslip, error) {
	rows, err := d.db.Query(`
		SELECT id, user_id, name, created_at
		FROM betslips
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying betslips: %w", err)
	}
	defer rows.Close()

	var slips []Betslip
	for rows.Next() {
		var slip Betslip
		if err := rows.Scan(&slip.ID, &slip.UserID, &slip.Name, &slip.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning betslip row: %w", err)
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range slips {
		legs, err := d.getBetslipLegs(slips[i].ID)
		if err != nil {
			return nil, err
		}
		slips[i].Legs = legs
	}

	return slips, nil
}

// GetBetslip retrieves a single slip with legs. Returns nil if not found.
func (d *DB) GetBetslip(userID, id string) (*Betslip, error) {
	row := d.db.QueryRow(`
		SELECT id, user_id, name, created_at
		FROM betslips WHERE id = ? AND user_id = ?
	`, id, userID)

	var slip Betslip
	err := row.Scan(&slip.ID, &slip.UserID, &slip.Name, &slip.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning betslip: %w", err)
	}

	slip.Legs, err = d.getBetslipLegs(slip.ID)
	if err != nil {
		return nil, err
	}

	return &slip, nil
}

func (d *DB) getBetslipLegs(betslipID string) ([]BetslipLeg, error) {
	rows, err := d.db.Query(`
		SELECT id, event_id, market, selection, prices, created_at
		FROM betslip_legs
		WHERE betslip_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, betslipID)
	if err != nil {
		return nil, fmt.Errorf("querying betslip legs: %w", err)
	}
	defer rows.Close()

	var legs []BetslipLeg
	for rows.Next() {
		var leg BetslipLeg
		var pricesJSON string
		if err := rows.Scan(&leg.ID, &leg.EventID, &leg.Market, &leg.Selection,
			&pricesJSON, &leg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning betslip leg row: %w", err)
		}
		if err := json.Unmarshal([]byte(pricesJSON), &leg.Prices); err != nil {
			return nil, fmt.Errorf("decoding leg prices: %w", err)
		}
		legs = append(legs, leg)
	}

	return legs, rows.Err()
}

// AddBetslipLeg appends a leg to an existing slip and returns the leg ID.
func (d *DB) AddBetslipLeg(userID, betslipID string, leg BetslipLeg) (string, error) {
	slip, err := d.GetBetslip(userID, betslipID)
	if err != nil {
		return "", err
	}
	if slip == nil {
		return "", sql.ErrNoRows
	}

	if leg.ID == "" {
		leg.ID = uuid.NewString()
	}
	pricesJSON, err := json.Marshal(leg.Prices)
	if err != nil {
		return "", fmt.Errorf("encoding leg prices: %w", err)
	}

	_, err = d.db.Exec(`
		INSERT INTO betslip_legs (id, betslip_id, event_id, market, selection, prices)
		VALUES (?, ?, ?, ?, ?, ?)
	`, leg.ID, betslipID, leg.EventID, leg.Market, leg.Selection, string(pricesJSON))
	if err != nil {
		return "", fmt.Errorf("inserting betslip leg: %w", err)
	}

	return leg.ID, nil
}

// RemoveBetslipLeg deletes one leg from a user's slip.
func (d *DB) RemoveBetslipLeg(userID, betslipID, legID string) error {
	slip, err := d.GetBetslip(userID, betslipID)
	if err != nil {
		return err
	}
	if slip == nil {
		return sql.ErrNoRows
	}

	result, err := d.db.Exec(`
		DELETE FROM betslip_legs WHERE id = ? AND betslip_id = ?
	`, legID, betslipID)
	if err != nil {
		return fmt.Errorf("deleting betslip leg: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting betslip leg: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteBetslip removes a slip and its legs.
func (d *DB) DeleteBetslip(userID, id string) error {
	result, err := d.db.Exec("DELETE FROM betslips WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("deleting betslip: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting betslip: %w", err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	// Cascade delete is not guaranteed without foreign_keys pragma, so clear
	// the legs explicitly.
	if _, err := d.db.Exec("DELETE FROM betslip_legs WHERE betslip_id = ?", id); err != nil {
		return fmt.Errorf("deleting betslip legs: %w", err)
	}
	return nil
}
