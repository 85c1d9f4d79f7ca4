package summary

import (
	"context"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
	"github.com/elC0mpa/budget-doctor/service/budget"
	"github.com/elC0mpa/budget-doctor/service/forecast"
	"github.com/elC0mpa/budget-doctor/service/normalizer"
)

// SelfCostServiceKey is the line-item key under which the system's own API
// spend is folded into the observation
const SelfCostServiceKey = "budget-doctor-api"

type builderService struct {
	costSource      service.CostDataSource
	usageSource     service.UsageDataSource
	identityService service.IdentityService
	advisor         service.NaturalLanguageAdvisor
	store           service.ObservationStore
	tracker         apitracker.TrackerService
	thresholds      model.BudgetThresholds
	historyDays     int

	normalizer normalizer.NormalizerService
	classifier budget.ClassifierService
	forecaster forecast.ForecasterService
}

// BuilderService composes normalization, self-cost merging, classification,
// forecasting and reconciliation into a single usage summary. It is the sole
// entry point external consumers read.
type BuilderService interface {
	BuildSummary(ctx context.Context) (*model.UsageSummary, error)
	Ask(ctx context.Context, question string) (string, error)
}
