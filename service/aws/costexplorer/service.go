package awscostexplorer

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
)

func NewService(awsconfig aws.Config, tracker apitracker.TrackerService) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client:  client,
		tracker: tracker,
	}
}

// FetchCurrent returns month-to-date costs grouped by service. BlendedCost
// is the record amount and UsageQuantity the usage metric when the service
// reports one. Cost Explorer has no tax split at this granularity (blended
// vs unblended is a rate-allocation difference, not tax), so the pre-tax
// field stays empty.
func (s *service) FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error) {
	now := time.Now()
	firstOfMonth := s.getFirstDayOfMonth(now)

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(firstOfMonth.Format("2006-01-02")),
			End:   aws.String(now.Format("2006-01-02")),
		},
		Metrics: []string{"BlendedCost", "UsageQuantity"},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	s.tracker.RecordCostExplorerCall("GetCostAndUsage")

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(output.ResultsByTime) == 0 {
		return nil, nil
	}

	groups := output.ResultsByTime[0].Groups
	records := make([]model.RawServiceRecord, 0, len(groups))

	for _, group := range groups {
		record, ok := recordFromGroup(group)
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// recordFromGroup maps one grouped Cost Explorer result to a raw record.
// Groups without a parseable BlendedCost are skipped.
func recordFromGroup(group types.Group) (model.RawServiceRecord, bool) {
	record := model.RawServiceRecord{}
	if len(group.Keys) > 0 {
		record.ServiceName = group.Keys[0]
	}

	amount, ok := metricAmount(group.Metrics, "BlendedCost")
	if !ok {
		return model.RawServiceRecord{}, false
	}
	record.Amount = amount

	if quantity, ok := metricAmount(group.Metrics, "UsageQuantity"); ok && quantity > 0 {
		record.UsageQuantity = &quantity
		if metric, found := group.Metrics["UsageQuantity"]; found && metric.Unit != nil {
			record.UsageUnit = *metric.Unit
		}
	}

	return record, true
}

// FetchHistory returns one total per day for the trailing window
func (s *service) FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -days)

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityDaily,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start.Format("2006-01-02")),
			End:   aws.String(now.Format("2006-01-02")),
		},
		Metrics: []string{"BlendedCost"},
	}

	s.tracker.RecordCostExplorerCall("GetCostAndUsage")

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	history := make([]model.DailyCost, 0, len(output.ResultsByTime))

	for _, timeResult := range output.ResultsByTime {
		metric, found := timeResult.Total["BlendedCost"]
		if !found || metric.Amount == nil || timeResult.TimePeriod == nil {
			continue
		}

		amount, err := strconv.ParseFloat(*metric.Amount, 64)
		if err != nil {
			continue
		}

		date, err := time.Parse("2006-01-02", aws.ToString(timeResult.TimePeriod.Start))
		if err != nil {
			continue
		}

		history = append(history, model.DailyCost{Date: date, Amount: amount})
	}

	return history, nil
}

func (s *service) getFirstDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
}

func metricAmount(metrics map[string]types.MetricValue, name string) (float64, bool) {
	metric, found := metrics[name]
	if !found || metric.Amount == nil {
		return 0, false
	}

	amount, err := strconv.ParseFloat(*metric.Amount, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
