package model

const (
	// ForecastHorizonDays caps how far out a threshold crossing is reported
	ForecastHorizonDays = 3650
	// ProjectionPeriods is the number of future periods extrapolated
	ProjectionPeriods = 6
	// ProjectionPeriodDays is the length of one projected period
	ProjectionPeriodDays = 30
)

// ThresholdOutcome tags the result of a days-to-threshold computation.
// The three non-numeric outcomes are mutually exclusive so consumers can
// render distinct messages instead of one generic "cannot forecast".
type ThresholdOutcome string

const (
	// OutcomeReached means the threshold is projected to be crossed in Days
	OutcomeReached ThresholdOutcome = "reached"
	// OutcomeAlreadyAtOrOver means current spend already meets the threshold
	OutcomeAlreadyAtOrOver ThresholdOutcome = "already_at_or_over"
	// OutcomeNoGrowth means spend is flat or shrinking
	OutcomeNoGrowth ThresholdOutcome = "no_growth"
	// OutcomeBeyondHorizon means the crossing lies past ForecastHorizonDays
	OutcomeBeyondHorizon ThresholdOutcome = "beyond_forecast_horizon"
	// OutcomeInsufficientHistory means fewer than two observations exist
	OutcomeInsufficientHistory ThresholdOutcome = "insufficient_history"
)

// DaysToThreshold is a tagged days-until-crossing value. Days is meaningful
// only when Outcome is OutcomeReached or OutcomeAlreadyAtOrOver (zero).
type DaysToThreshold struct {
	Outcome ThresholdOutcome
	Days    int
}

// Projection is one extrapolated future period total
type Projection struct {
	PeriodOffset int
	Amount       float64
}

// ForecastResult is the growth-rate extrapolation over the cost history
type ForecastResult struct {
	DailyGrowthRate     float64
	Projections         []Projection
	DaysToWarning       DaysToThreshold
	DaysToCritical      DaysToThreshold
	MonthlyProjection   float64
	InsufficientHistory bool
}
