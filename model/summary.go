package model

// Reconciliation reports whether the per-service breakdown sums to the
// observation total within tolerance. A mismatch is surfaced here, never
// silently adjusted.
type Reconciliation struct {
	Reconciled bool
	Delta      float64
	Tolerance  float64
}

// InstanceUsage is one running compute instance contributing to spend
type InstanceUsage struct {
	ID           string
	Name         string
	InstanceType string
	State        string
}

// UsageSummary is the single reconciled report consumed by the presentation
// layer and the advisor. It is the sole output of a report-generation pass.
type UsageSummary struct {
	Account         *AccountInfo
	Observation     CostObservation
	Status          BudgetStatus
	Forecast        ForecastResult
	SessionCosts    SessionSummary
	Reconciliation  Reconciliation
	RejectedRecords int
	Instances       []InstanceUsage
}
