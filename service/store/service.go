package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elC0mpa/budget-doctor/model"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS observations (
	observed_at TEXT NOT NULL,
	observed_day TEXT NOT NULL,
	total_amount REAL NOT NULL,
	line_items TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_observations_day ON observations(observed_day);
`

func NewService(dbPath string) (*service, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("observation log path cannot be empty")
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open observation log: %w", err)
	}
	// single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize observation log schema: %w", err)
	}

	return &service{db: db}, nil
}

// Append writes one observation. The log is additive-only; nothing edits or
// removes a row once written.
func (s *service) Append(ctx context.Context, obs model.CostObservation) error {
	items, err := json.Marshal(obs.LineItems)
	if err != nil {
		return fmt.Errorf("failed to encode line items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO observations (observed_at, observed_day, total_amount, line_items) VALUES (?, ?, ?, ?)`,
		obs.Date.Format(time.RFC3339),
		obs.Date.Format("2006-01-02"),
		obs.TotalAmount,
		string(items),
	)
	if err != nil {
		return fmt.Errorf("failed to append observation: %w", err)
	}
	return nil
}

// History returns the latest recorded total for each of the last `days`
// days, oldest first.
func (s *service) History(ctx context.Context, days int) ([]model.DailyCost, error) {
	since := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	rows, err := s.db.QueryContext(ctx, `
		SELECT observed_day, total_amount
		FROM observations o
		WHERE observed_day >= ?
		AND observed_at = (
			SELECT MAX(observed_at) FROM observations WHERE observed_day = o.observed_day
		)
		ORDER BY observed_day ASC`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read observation history: %w", err)
	}
	defer rows.Close()

	var history []model.DailyCost
	for rows.Next() {
		var day string
		var amount float64
		if err := rows.Scan(&day, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan observation row: %w", err)
		}

		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("failed to parse observation day: %w", err)
		}

		history = append(history, model.DailyCost{Date: date, Amount: amount})
	}

	return history, rows.Err()
}

func (s *service) Close() error {
	return s.db.Close()
}
