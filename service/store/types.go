package store

import (
	"context"
	"database/sql"

	"github.com/elC0mpa/budget-doctor/model"
)

type service struct {
	db *sql.DB
}

// ObservationLogService is a flat append-only log of cost observations.
// Rows are never updated or deleted; History reads back the latest total
// per day in chronological order.
type ObservationLogService interface {
	Append(ctx context.Context, obs model.CostObservation) error
	History(ctx context.Context, days int) ([]model.DailyCost, error)
	Close() error
}
