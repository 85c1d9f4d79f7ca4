package forecast

import (
	"fmt"
	"math"

	"github.com/elC0mpa/budget-doctor/model"
)

func NewService() *service {
	return &service{}
}

// Forecast extrapolates the history linearly using the average day-over-day
// delta. History must be chronologically ordered; gaps between observations
// are allowed. With fewer than two observations the growth rate is zero and
// the result is marked insufficient.
func (s *service) Forecast(history []model.DailyCost, thresholds model.BudgetThresholds) (model.ForecastResult, error) {
	if err := thresholds.Validate(); err != nil {
		return model.ForecastResult{}, fmt.Errorf("forecast: %w", err)
	}

	result := model.ForecastResult{}

	var current float64
	if len(history) > 0 {
		current = history[len(history)-1].Amount
	}

	if len(history) < 2 {
		result.InsufficientHistory = true
		result.DaysToWarning = model.DaysToThreshold{Outcome: model.OutcomeInsufficientHistory}
		result.DaysToCritical = model.DaysToThreshold{Outcome: model.OutcomeInsufficientHistory}
		result.Projections = project(current, 0)
		result.MonthlyProjection = result.Projections[0].Amount
		return result, nil
	}

	var deltaSum float64
	for i := 1; i < len(history); i++ {
		deltaSum += history[i].Amount - history[i-1].Amount
	}
	rate := deltaSum / float64(len(history)-1)

	result.DailyGrowthRate = rate
	result.DaysToWarning = daysToThreshold(current, thresholds.WarningLimit, rate)
	result.DaysToCritical = daysToThreshold(current, thresholds.CriticalLimit, rate)
	result.Projections = project(current, rate)
	result.MonthlyProjection = result.Projections[0].Amount

	return result, nil
}

// daysToThreshold distinguishes three non-numeric outcomes: already at or
// over the limit (zero days, regardless of growth), flat or shrinking spend,
// and crossings past the forecast horizon. They must never collapse into one
// generic "cannot forecast".
func daysToThreshold(current, threshold, rate float64) model.DaysToThreshold {
	if current >= threshold {
		return model.DaysToThreshold{Outcome: model.OutcomeAlreadyAtOrOver, Days: 0}
	}
	if rate <= 0 {
		return model.DaysToThreshold{Outcome: model.OutcomeNoGrowth}
	}

	days := int(math.Ceil((threshold - current) / rate))
	if days > model.ForecastHorizonDays {
		return model.DaysToThreshold{Outcome: model.OutcomeBeyondHorizon}
	}
	return model.DaysToThreshold{Outcome: model.OutcomeReached, Days: days}
}

func project(current, rate float64) []model.Projection {
	projections := make([]model.Projection, 0, model.ProjectionPeriods)
	for period := 1; period <= model.ProjectionPeriods; period++ {
		projections = append(projections, model.Projection{
			PeriodOffset: period,
			Amount:       current + rate*float64(model.ProjectionPeriodDays*period),
		})
	}
	return projections
}
