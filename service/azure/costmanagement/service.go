package azurecostmanagement

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/budget-doctor/model"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armcostmanagement.NewQueryClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cost management client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// FetchCurrent implements service.CostDataSource with month-to-date costs
// grouped by service name. Azure reports no tax split through this API, so
// the pre-tax field stays empty.
func (s *service) FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(now),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
			Grouping: []*armcostmanagement.QueryGrouping{
				{
					Type: to.Ptr(armcostmanagement.QueryColumnTypeDimension),
					Name: to.Ptr("ServiceName"),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, s.scope(), queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query costs: %w", err)
	}

	// Daily rows are aggregated per service; insertion order follows the
	// first appearance of each service in the response.
	totals := make(map[string]float64)
	var order []string

	if resp.Properties != nil {
		for _, row := range resp.Properties.Rows {
			if len(row) < 2 {
				continue
			}
			cost, ok := row[0].(float64)
			if !ok {
				continue
			}
			serviceName, ok := row[1].(string)
			if !ok {
				continue
			}

			if _, seen := totals[serviceName]; !seen {
				order = append(order, serviceName)
			}
			totals[serviceName] += cost
		}
	}

	records := make([]model.RawServiceRecord, 0, len(order))
	for _, serviceName := range order {
		records = append(records, model.RawServiceRecord{
			ServiceName: serviceName,
			Amount:      totals[serviceName],
		})
	}

	return records, nil
}

// FetchHistory implements service.CostDataSource with one total per day
func (s *service) FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -days)

	queryDefinition := armcostmanagement.QueryDefinition{
		Type:      to.Ptr(armcostmanagement.ExportTypeActualCost),
		Timeframe: to.Ptr(armcostmanagement.TimeframeTypeCustom),
		TimePeriod: &armcostmanagement.QueryTimePeriod{
			From: to.Ptr(startDate),
			To:   to.Ptr(now),
		},
		Dataset: &armcostmanagement.QueryDataset{
			Granularity: to.Ptr(armcostmanagement.GranularityTypeDaily),
			Aggregation: map[string]*armcostmanagement.QueryAggregation{
				"totalCost": {
					Name:     to.Ptr("Cost"),
					Function: to.Ptr(armcostmanagement.FunctionTypeSum),
				},
			},
		},
	}

	resp, err := s.client.Usage(ctx, s.scope(), queryDefinition, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost history: %w", err)
	}

	var history []model.DailyCost

	if resp.Properties != nil {
		for _, row := range resp.Properties.Rows {
			// Row format: [cost, usageDate, currency]
			if len(row) < 2 {
				continue
			}
			cost, ok := row[0].(float64)
			if !ok {
				continue
			}

			date, ok := parseUsageDate(row[1])
			if !ok {
				continue
			}

			history = append(history, model.DailyCost{Date: date, Amount: cost})
		}
	}

	return history, nil
}

func (s *service) scope() string {
	return fmt.Sprintf("/subscriptions/%s", s.subscriptionID)
}

// parseUsageDate handles the numeric YYYYMMDD form the query API returns
func parseUsageDate(value any) (time.Time, bool) {
	numeric, ok := value.(float64)
	if !ok {
		return time.Time{}, false
	}

	date, err := time.Parse("20060102", fmt.Sprintf("%08d", int(numeric)))
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
