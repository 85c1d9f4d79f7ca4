package model

// HealthState is a discrete budget health classification
type HealthState string

const (
	StateHealthy  HealthState = "HEALTHY"
	StateCaution  HealthState = "CAUTION"
	StateWarning  HealthState = "WARNING"
	StateCritical HealthState = "CRITICAL"
)

// CautionFraction of the warning limit at which spend moves from HEALTHY to CAUTION
const CautionFraction = 0.75

// BudgetThresholds holds the configured spending limits
type BudgetThresholds struct {
	WarningLimit  float64
	CriticalLimit float64
}

// Validate checks that both limits are positive and warning sits below critical
func (t BudgetThresholds) Validate() error {
	if t.WarningLimit <= 0 || t.CriticalLimit <= 0 {
		return ErrInvalidThreshold
	}
	if t.WarningLimit >= t.CriticalLimit {
		return ErrInvalidThreshold
	}
	return nil
}

// BudgetStatus is the derived health of spend against configured thresholds.
// UtilizationPercent is always measured against the critical limit, so 100%
// means "at the critical ceiling" regardless of which threshold triggered
// the state.
type BudgetStatus struct {
	State              HealthState
	UtilizationPercent float64
	Recommendation     string
}
