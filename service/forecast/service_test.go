package forecast

import (
	"testing"
	"time"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testThresholds = model.BudgetThresholds{WarningLimit: 80, CriticalLimit: 100}

func history(amounts ...float64) []model.DailyCost {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	points := make([]model.DailyCost, 0, len(amounts))
	for i, amount := range amounts {
		points = append(points, model.DailyCost{
			Date:   start.AddDate(0, 0, i),
			Amount: amount,
		})
	}
	return points
}

func TestFlatHistoryIsNoGrowth(t *testing.T) {
	result, err := NewService().Forecast(history(100, 100, 100), model.BudgetThresholds{WarningLimit: 150, CriticalLimit: 200})
	require.NoError(t, err)

	assert.False(t, result.InsufficientHistory)
	assert.Zero(t, result.DailyGrowthRate)
	assert.Equal(t, model.OutcomeNoGrowth, result.DaysToWarning.Outcome)
	assert.Equal(t, model.OutcomeNoGrowth, result.DaysToCritical.Outcome)
}

func TestSinglePointIsInsufficientHistory(t *testing.T) {
	result, err := NewService().Forecast(history(100), testThresholds)
	require.NoError(t, err)

	assert.True(t, result.InsufficientHistory)
	assert.Zero(t, result.DailyGrowthRate)
	assert.Equal(t, model.OutcomeInsufficientHistory, result.DaysToWarning.Outcome)
	assert.Equal(t, model.OutcomeInsufficientHistory, result.DaysToCritical.Outcome)
	// projections stay flat at the latest observation
	require.Len(t, result.Projections, model.ProjectionPeriods)
	assert.Equal(t, 100.0, result.MonthlyProjection)
}

func TestEmptyHistoryIsInsufficientHistory(t *testing.T) {
	result, err := NewService().Forecast(nil, testThresholds)
	require.NoError(t, err)

	assert.True(t, result.InsufficientHistory)
	assert.Equal(t, model.OutcomeInsufficientHistory, result.DaysToCritical.Outcome)
}

func TestAlreadyAtThresholdIsZeroDaysNotNoGrowth(t *testing.T) {
	result, err := NewService().Forecast(history(90, 100), testThresholds)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeAlreadyAtOrOver, result.DaysToCritical.Outcome)
	assert.Zero(t, result.DaysToCritical.Days)
	assert.Equal(t, model.OutcomeAlreadyAtOrOver, result.DaysToWarning.Outcome)
}

func TestAlreadyOverWinsEvenWithFlatSpend(t *testing.T) {
	// at the limit with zero growth: "already crossed" must not collapse
	// into the no-growth message
	result, err := NewService().Forecast(history(100, 100), testThresholds)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeAlreadyAtOrOver, result.DaysToCritical.Outcome)
	assert.Equal(t, model.OutcomeAlreadyAtOrOver, result.DaysToWarning.Outcome)
}

func TestPositiveGrowthProjectsCrossings(t *testing.T) {
	// $2/day growth, currently at $50
	result, err := NewService().Forecast(history(44, 46, 48, 50), testThresholds)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, result.DailyGrowthRate, 1e-9)

	require.Equal(t, model.OutcomeReached, result.DaysToWarning.Outcome)
	require.Equal(t, model.OutcomeReached, result.DaysToCritical.Outcome)
	assert.Equal(t, 15, result.DaysToWarning.Days)  // (80-50)/2
	assert.Equal(t, 25, result.DaysToCritical.Days) // (100-50)/2
	assert.Less(t, result.DaysToWarning.Days, result.DaysToCritical.Days)
}

func TestCrossingDaysAreRoundedUp(t *testing.T) {
	// $3/day growth from $50: (80-50)/3 = 10 exactly, (100-50)/3 = 16.67 -> 17
	result, err := NewService().Forecast(history(47, 50), testThresholds)
	require.NoError(t, err)

	assert.Equal(t, 10, result.DaysToWarning.Days)
	assert.Equal(t, 17, result.DaysToCritical.Days)
}

func TestNegativeGrowthIsNoGrowth(t *testing.T) {
	result, err := NewService().Forecast(history(60, 55, 50), testThresholds)
	require.NoError(t, err)

	assert.Negative(t, result.DailyGrowthRate)
	assert.Equal(t, model.OutcomeNoGrowth, result.DaysToWarning.Outcome)
	assert.Equal(t, model.OutcomeNoGrowth, result.DaysToCritical.Outcome)
}

func TestDistantCrossingIsBeyondHorizon(t *testing.T) {
	// one cent per day from $1: warning crossing is ~7900 days away
	result, err := NewService().Forecast(history(0.99, 1.00), testThresholds)
	require.NoError(t, err)

	assert.Equal(t, model.OutcomeBeyondHorizon, result.DaysToWarning.Outcome)
	assert.Equal(t, model.OutcomeBeyondHorizon, result.DaysToCritical.Outcome)
}

func TestProjectionsExtendLinearly(t *testing.T) {
	result, err := NewService().Forecast(history(48, 50), testThresholds)
	require.NoError(t, err)

	require.Len(t, result.Projections, 6)
	for i, projection := range result.Projections {
		assert.Equal(t, i+1, projection.PeriodOffset)
		assert.InDelta(t, 50+2.0*30*float64(i+1), projection.Amount, 1e-9)
	}
	assert.Equal(t, result.Projections[0].Amount, result.MonthlyProjection)
}

func TestGapsInHistoryArePermitted(t *testing.T) {
	points := []model.DailyCost{
		{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), Amount: 10},
		{Date: time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), Amount: 13},
		{Date: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), Amount: 14},
	}

	result, err := NewService().Forecast(points, testThresholds)
	require.NoError(t, err)
	assert.False(t, result.InsufficientHistory)
	assert.Positive(t, result.DailyGrowthRate)
}

func TestInvalidThresholdsFail(t *testing.T) {
	_, err := NewService().Forecast(history(1, 2), model.BudgetThresholds{WarningLimit: 100, CriticalLimit: 80})
	assert.ErrorIs(t, err, model.ErrInvalidThreshold)
}
