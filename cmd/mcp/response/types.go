package response

// AccountInfo represents cloud account/project identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// LineItem represents one service's normalized cost contribution
type LineItem struct {
	ServiceKey    string   `json:"service_key"`
	DisplayName   string   `json:"display_name"`
	Amount        float64  `json:"amount"`
	PreTaxAmount  *float64 `json:"pre_tax_amount,omitempty"`
	TaxAmount     float64  `json:"tax_amount,omitempty"`
	UsageQuantity *float64 `json:"usage_quantity,omitempty"`
	UsageUnit     string   `json:"usage_unit,omitempty"`
	UnitCost      *float64 `json:"unit_cost,omitempty"`
}

// Observation represents a point-in-time spend total with its breakdown
type Observation struct {
	Date        string     `json:"date"`
	TotalAmount float64    `json:"total_amount"`
	LineItems   []LineItem `json:"line_items"`
}

// BudgetStatus represents derived budget health
type BudgetStatus struct {
	State              string  `json:"state"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Recommendation     string  `json:"recommendation"`
}

// DaysToThreshold represents a tagged days-until-crossing value
type DaysToThreshold struct {
	Outcome string `json:"outcome"`
	Days    *int   `json:"days,omitempty"`
}

// Projection represents one extrapolated future period total
type Projection struct {
	PeriodOffset int     `json:"period_offset"`
	DaysOut      int     `json:"days_out"`
	Amount       float64 `json:"amount"`
}

// Forecast represents the growth-rate extrapolation
type Forecast struct {
	DailyGrowthRate     float64         `json:"daily_growth_rate"`
	MonthlyProjection   float64         `json:"monthly_projection"`
	Projections         []Projection    `json:"projections"`
	DaysToWarning       DaysToThreshold `json:"days_to_warning"`
	DaysToCritical      DaysToThreshold `json:"days_to_critical"`
	InsufficientHistory bool            `json:"insufficient_history"`
}

// APIUsage represents aggregated self-cost for a single metered API
type APIUsage struct {
	API          string  `json:"api"`
	CallCount    int     `json:"call_count"`
	InputTokens  int     `json:"input_tokens,omitempty"`
	OutputTokens int     `json:"output_tokens,omitempty"`
	TotalCost    float64 `json:"total_cost"`
}

// SessionCosts represents the rolled-up session self-cost ledger
type SessionCosts struct {
	TotalCost float64    `json:"total_cost"`
	CallCount int        `json:"call_count"`
	APIs      []APIUsage `json:"apis"`
}

// Reconciliation reports whether the breakdown sums to the reported total
type Reconciliation struct {
	Reconciled bool    `json:"reconciled"`
	Delta      float64 `json:"delta"`
	Tolerance  float64 `json:"tolerance"`
}

// Instance represents one running compute instance
type Instance struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	InstanceType string `json:"instance_type"`
	State        string `json:"state"`
}

// UsageSummary is the full reconciled budget report
type UsageSummary struct {
	Account         *AccountInfo   `json:"account,omitempty"`
	Observation     Observation    `json:"observation"`
	Status          BudgetStatus   `json:"status"`
	Forecast        Forecast       `json:"forecast"`
	SessionCosts    SessionCosts   `json:"session_costs"`
	Reconciliation  Reconciliation `json:"reconciliation"`
	RejectedRecords int            `json:"rejected_records"`
	Instances       []Instance     `json:"instances,omitempty"`
}

// AdvisorAnswer wraps a free-text advisor response with the spend it cost
type AdvisorAnswer struct {
	Question    string  `json:"question"`
	Answer      string  `json:"answer"`
	SessionCost float64 `json:"session_cost"`
}
