package awsbedrock

import (
	"testing"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestSummaryContextMentionsKeyFigures(t *testing.T) {
	summary := &model.UsageSummary{
		Observation: model.CostObservation{
			TotalAmount: 85.5,
			LineItems: []model.LineItem{
				{DisplayName: "Amazon EC2", Amount: 80},
				{DisplayName: "Budget Doctor API Usage", Amount: 5.5},
			},
		},
		Status: model.BudgetStatus{
			State:              model.StateWarning,
			UtilizationPercent: 85.5,
			Recommendation:     "Review the highest-cost services",
		},
		Forecast: model.ForecastResult{
			DailyGrowthRate: 1.5,
			DaysToWarning:   model.DaysToThreshold{Outcome: model.OutcomeAlreadyAtOrOver},
			DaysToCritical:  model.DaysToThreshold{Outcome: model.OutcomeReached, Days: 10},
		},
	}

	context := summaryContext(summary)

	assert.Contains(t, context, "$85.50")
	assert.Contains(t, context, "WARNING")
	assert.Contains(t, context, "Amazon EC2")
	assert.Contains(t, context, "already at or over")
	assert.Contains(t, context, "10 days")
}

func TestSummaryContextHandlesNil(t *testing.T) {
	assert.Contains(t, summaryContext(nil), "No usage data")
}

func TestDescribeDaysDistinguishesOutcomes(t *testing.T) {
	cases := map[model.ThresholdOutcome]string{
		model.OutcomeReached:             "37 days",
		model.OutcomeAlreadyAtOrOver:     "already at or over",
		model.OutcomeNoGrowth:            "flat or shrinking",
		model.OutcomeBeyondHorizon:       "ten years",
		model.OutcomeInsufficientHistory: "not enough history",
	}

	for outcome, fragment := range cases {
		described := describeDays(model.DaysToThreshold{Outcome: outcome, Days: 37})
		assert.Contains(t, described, fragment)
	}
}
