package budget

import (
	"github.com/elC0mpa/budget-doctor/model"
)

type service struct{}

// ClassifierService maps current spend and configured thresholds to a
// discrete budget health state
type ClassifierService interface {
	Classify(totalAmount float64, thresholds model.BudgetThresholds) (model.BudgetStatus, error)
}
