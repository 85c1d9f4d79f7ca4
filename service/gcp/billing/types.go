package gcpbilling

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/budget-doctor/model"
)

type service struct {
	projectID      string
	billingAccount string
	bqClient       *bigquery.Client
}

// BillingService exposes the GCP billing export (via BigQuery) as a cost
// data source
type BillingService interface {
	FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error)
	FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error)
	Close() error
}
