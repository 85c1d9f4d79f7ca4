package forecast

import (
	"github.com/elC0mpa/budget-doctor/model"
)

type service struct{}

// ForecasterService fits a daily growth rate from spend history and projects
// threshold crossings and a six-period cost curve
type ForecasterService interface {
	Forecast(history []model.DailyCost, thresholds model.BudgetThresholds) (model.ForecastResult, error)
}
