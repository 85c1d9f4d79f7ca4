package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
)

type service struct {
	client  *costexplorer.Client
	tracker apitracker.TrackerService
}

// CostExplorerService exposes AWS Cost Explorer as a cost data source.
// Every query is metered through the tracker so the engine's own Cost
// Explorer spend shows up in the budget it reports on.
type CostExplorerService interface {
	FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error)
	FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error)
}
