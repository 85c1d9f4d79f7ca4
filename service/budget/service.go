package budget

import (
	"fmt"

	"github.com/elC0mpa/budget-doctor/model"
)

func NewService() *service {
	return &service{}
}

// Classify evaluates thresholds from most severe to least severe; the first
// match wins, which fixes the behavior at exact equality. Utilization is
// always measured against the critical limit.
func (s *service) Classify(totalAmount float64, thresholds model.BudgetThresholds) (model.BudgetStatus, error) {
	if err := thresholds.Validate(); err != nil {
		return model.BudgetStatus{}, fmt.Errorf("classify: %w", err)
	}

	utilization := totalAmount / thresholds.CriticalLimit * 100

	switch {
	case totalAmount >= thresholds.CriticalLimit:
		return model.BudgetStatus{
			State:              model.StateCritical,
			UtilizationPercent: utilization,
			Recommendation: fmt.Sprintf(
				"Spending $%.2f exceeds the critical limit of $%.2f by $%.2f. Stop non-essential services immediately to prevent further charges.",
				totalAmount, thresholds.CriticalLimit, totalAmount-thresholds.CriticalLimit),
		}, nil
	case totalAmount >= thresholds.WarningLimit:
		return model.BudgetStatus{
			State:              model.StateWarning,
			UtilizationPercent: utilization,
			Recommendation: fmt.Sprintf(
				"Spending $%.2f exceeds the warning limit of $%.2f by $%.2f. Review the highest-cost services and reduce usage before the critical limit.",
				totalAmount, thresholds.WarningLimit, totalAmount-thresholds.WarningLimit),
		}, nil
	case totalAmount >= model.CautionFraction*thresholds.WarningLimit:
		return model.BudgetStatus{
			State:              model.StateCaution,
			UtilizationPercent: utilization,
			Recommendation: fmt.Sprintf(
				"Spending $%.2f is approaching the warning limit of $%.2f. Monitor usage closely.",
				totalAmount, thresholds.WarningLimit),
		}, nil
	default:
		return model.BudgetStatus{
			State:              model.StateHealthy,
			UtilizationPercent: utilization,
			Recommendation: fmt.Sprintf(
				"Spending $%.2f is well within the configured limits. No action needed.",
				totalAmount),
		}, nil
	}
}
