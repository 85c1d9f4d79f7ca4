package response

import (
	"sort"

	"github.com/elC0mpa/budget-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertObservation converts model.CostObservation to response.Observation
func ConvertObservation(obs model.CostObservation) Observation {
	lineItems := make([]LineItem, 0, len(obs.LineItems))
	for _, item := range obs.LineItems {
		converted := LineItem{
			ServiceKey:    item.ServiceKey,
			DisplayName:   item.DisplayName,
			Amount:        item.Amount,
			PreTaxAmount:  item.PreTaxAmount,
			TaxAmount:     item.TaxAmount,
			UsageQuantity: item.UsageQuantity,
			UsageUnit:     item.UsageUnit,
		}
		if unitCost, ok := item.UnitCost(); ok {
			converted.UnitCost = &unitCost
		}
		lineItems = append(lineItems, converted)
	}

	return Observation{
		Date:        obs.Date.Format("2006-01-02"),
		TotalAmount: obs.TotalAmount,
		LineItems:   lineItems,
	}
}

// ConvertStatus converts model.BudgetStatus to response.BudgetStatus
func ConvertStatus(status model.BudgetStatus) BudgetStatus {
	return BudgetStatus{
		State:              string(status.State),
		UtilizationPercent: status.UtilizationPercent,
		Recommendation:     status.Recommendation,
	}
}

// ConvertForecast converts model.ForecastResult to response.Forecast
func ConvertForecast(forecast model.ForecastResult) Forecast {
	projections := make([]Projection, 0, len(forecast.Projections))
	for _, projection := range forecast.Projections {
		projections = append(projections, Projection{
			PeriodOffset: projection.PeriodOffset,
			DaysOut:      projection.PeriodOffset * model.ProjectionPeriodDays,
			Amount:       projection.Amount,
		})
	}

	return Forecast{
		DailyGrowthRate:     forecast.DailyGrowthRate,
		MonthlyProjection:   forecast.MonthlyProjection,
		Projections:         projections,
		DaysToWarning:       convertDaysToThreshold(forecast.DaysToWarning),
		DaysToCritical:      convertDaysToThreshold(forecast.DaysToCritical),
		InsufficientHistory: forecast.InsufficientHistory,
	}
}

func convertDaysToThreshold(days model.DaysToThreshold) DaysToThreshold {
	converted := DaysToThreshold{Outcome: string(days.Outcome)}
	switch days.Outcome {
	case model.OutcomeReached, model.OutcomeAlreadyAtOrOver:
		value := days.Days
		converted.Days = &value
	}
	return converted
}

// ConvertSessionCosts converts model.SessionSummary to response.SessionCosts
func ConvertSessionCosts(session model.SessionSummary) SessionCosts {
	apis := make([]APIUsage, 0, len(session.PerAPI))
	for _, usage := range session.PerAPI {
		apis = append(apis, APIUsage{
			API:          string(usage.API),
			CallCount:    usage.CallCount,
			InputTokens:  usage.InputTokens,
			OutputTokens: usage.OutputTokens,
			TotalCost:    usage.TotalCost,
		})
	}

	sort.Slice(apis, func(i, j int) bool {
		return apis[i].TotalCost > apis[j].TotalCost
	})

	return SessionCosts{
		TotalCost: session.TotalCost,
		CallCount: session.CallCount,
		APIs:      apis,
	}
}

// ConvertUsageSummary converts the full model.UsageSummary
func ConvertUsageSummary(summary *model.UsageSummary) *UsageSummary {
	if summary == nil {
		return nil
	}

	instances := make([]Instance, 0, len(summary.Instances))
	for _, instance := range summary.Instances {
		instances = append(instances, Instance{
			ID:           instance.ID,
			Name:         instance.Name,
			InstanceType: instance.InstanceType,
			State:        instance.State,
		})
	}

	return &UsageSummary{
		Account:      ConvertAccountInfo(summary.Account),
		Observation:  ConvertObservation(summary.Observation),
		Status:       ConvertStatus(summary.Status),
		Forecast:     ConvertForecast(summary.Forecast),
		SessionCosts: ConvertSessionCosts(summary.SessionCosts),
		Reconciliation: Reconciliation{
			Reconciled: summary.Reconciliation.Reconciled,
			Delta:      summary.Reconciliation.Delta,
			Tolerance:  summary.Reconciliation.Tolerance,
		},
		RejectedRecords: summary.RejectedRecords,
		Instances:       instances,
	}
}
