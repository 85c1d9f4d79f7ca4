package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
	"github.com/elC0mpa/budget-doctor/service/budget"
	"github.com/elC0mpa/budget-doctor/service/forecast"
	"github.com/elC0mpa/budget-doctor/service/normalizer"
)

// NewService wires the report pipeline. usageSource, identityService,
// advisor and store may be nil; the corresponding summary fields stay empty.
func NewService(
	costSource service.CostDataSource,
	usageSource service.UsageDataSource,
	identityService service.IdentityService,
	advisor service.NaturalLanguageAdvisor,
	store service.ObservationStore,
	tracker apitracker.TrackerService,
	thresholds model.BudgetThresholds,
	historyDays int,
) *builderService {
	return &builderService{
		costSource:      costSource,
		usageSource:     usageSource,
		identityService: identityService,
		advisor:         advisor,
		store:           store,
		tracker:         tracker,
		thresholds:      thresholds,
		historyDays:     historyDays,
		normalizer:      normalizer.NewService(),
		classifier:      budget.NewService(),
		forecaster:      forecast.NewService(),
	}
}

// BuildSummary runs one report-generation pass. Data-source failures are
// treated as absent data, never as engine errors; only an invalid threshold
// configuration aborts the pass.
func (s *builderService) BuildSummary(ctx context.Context) (*model.UsageSummary, error) {
	now := time.Now()

	records, err := s.costSource.FetchCurrent(ctx)
	if err != nil {
		slog.Warn("cost source unavailable, building summary without current records", "err", err)
		records = nil
	}

	history, err := s.costSource.FetchHistory(ctx, s.historyDays)
	if err != nil {
		slog.Warn("cost history unavailable", "err", err)
		history = nil
	}
	if len(history) == 0 && s.store != nil {
		history, err = s.store.History(ctx, s.historyDays)
		if err != nil {
			slog.Warn("observation log unavailable", "err", err)
			history = nil
		}
	}

	obs, rejected := s.normalizer.Normalize(now, records)

	session := s.tracker.SessionSummary()
	mergeSelfCost(&obs, session)

	// A same-day history point carries the source-reported total; keeping it
	// (plus self-cost) as the observation total is what makes reconciliation
	// against the per-service sum meaningful.
	if reported, ok := reportedTotal(history, now); ok {
		obs.TotalAmount = reported + session.TotalCost
	}

	status, err := s.classifier.Classify(obs.TotalAmount, s.thresholds)
	if err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}

	forecastResult, err := s.forecaster.Forecast(mergedHistory(history, obs), s.thresholds)
	if err != nil {
		return nil, fmt.Errorf("build summary: %w", err)
	}

	result := &model.UsageSummary{
		Observation:     obs,
		Status:          status,
		Forecast:        forecastResult,
		SessionCosts:    session,
		Reconciliation:  reconcile(obs),
		RejectedRecords: rejected,
	}

	if s.identityService != nil {
		account, err := s.identityService.GetAccountInfo(ctx)
		if err != nil {
			slog.Warn("account identity unavailable", "err", err)
		} else {
			result.Account = account
		}
	}

	if s.usageSource != nil {
		instances, err := s.usageSource.FetchRunningInstances(ctx)
		if err != nil {
			slog.Warn("usage source unavailable", "err", err)
		} else {
			result.Instances = instances
		}
	}

	if s.store != nil {
		if err := s.store.Append(ctx, obs); err != nil {
			slog.Warn("could not persist observation", "err", err)
		}
	}

	return result, nil
}

// Ask builds a fresh summary and hands it to the advisor as context
func (s *builderService) Ask(ctx context.Context, question string) (string, error) {
	if s.advisor == nil {
		return "", errors.New("no advisor configured")
	}

	result, err := s.BuildSummary(ctx)
	if err != nil {
		return "", err
	}

	return s.advisor.Advise(ctx, result, question)
}

func mergeSelfCost(obs *model.CostObservation, session model.SessionSummary) {
	if session.CallCount == 0 {
		return
	}

	obs.LineItems = append(obs.LineItems, model.LineItem{
		ServiceKey:  SelfCostServiceKey,
		DisplayName: "Budget Doctor API Usage",
		Amount:      session.TotalCost,
	})
	obs.TotalAmount += session.TotalCost
}

func reportedTotal(history []model.DailyCost, now time.Time) (float64, bool) {
	if len(history) == 0 {
		return 0, false
	}

	last := history[len(history)-1]
	if !sameDay(last.Date, now) {
		return 0, false
	}
	return last.Amount, true
}

// mergedHistory swaps today's history point (or appends one) for the merged
// observation total, so the forecast sees the same spend the classifier saw.
func mergedHistory(history []model.DailyCost, obs model.CostObservation) []model.DailyCost {
	merged := make([]model.DailyCost, len(history))
	copy(merged, history)

	today := model.DailyCost{Date: obs.Date, Amount: obs.TotalAmount}
	if len(merged) > 0 && sameDay(merged[len(merged)-1].Date, obs.Date) {
		merged[len(merged)-1] = today
		return merged
	}
	return append(merged, today)
}

// reconcile verifies the breakdown sums to the observation total within an
// absolute-or-relative tolerance. Mismatches are reported, never repaired.
func reconcile(obs model.CostObservation) model.Reconciliation {
	var sum float64
	for _, item := range obs.LineItems {
		sum += item.Amount
	}

	tolerance := math.Max(0.01, math.Abs(obs.TotalAmount)*0.001)
	delta := sum - obs.TotalAmount

	return model.Reconciliation{
		Reconciled: math.Abs(delta) <= tolerance,
		Delta:      delta,
		Tolerance:  tolerance,
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
