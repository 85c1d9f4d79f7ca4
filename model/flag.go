package model

type Flags struct {
	// Common flags
	Provider      string
	HistoryDays   int
	WarningLimit  float64
	CriticalLimit float64
	Forecast      bool
	Session       bool
	Ask           string

	// AWS-specific flags
	Region  string
	Profile string

	// GCP-specific flags
	Project        string
	BillingAccount string

	// Azure-specific flags
	Subscription string
}
