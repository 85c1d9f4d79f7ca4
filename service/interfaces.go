package service

import (
	"context"

	"github.com/elC0mpa/budget-doctor/model"
)

// IdentityService provides cloud account/project identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// CostDataSource supplies already-parsed billing records. Fetch failures are
// the source's concern; the engine treats them as "no data".
type CostDataSource interface {
	FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error)
	FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error)
}

// UsageDataSource supplies running compute inventory for usage context
type UsageDataSource interface {
	FetchRunningInstances(ctx context.Context) ([]model.InstanceUsage, error)
}

// NaturalLanguageAdvisor answers free-text questions given a usage summary
// as context
type NaturalLanguageAdvisor interface {
	Advise(ctx context.Context, summary *model.UsageSummary, question string) (string, error)
}

// ObservationStore is a flat append-only log of cost observations
type ObservationStore interface {
	Append(ctx context.Context, obs model.CostObservation) error
	History(ctx context.Context, days int) ([]model.DailyCost, error)
	Close() error
}
