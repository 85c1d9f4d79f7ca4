package gcpbilling

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/elC0mpa/budget-doctor/model"
	gcpconfig "github.com/elC0mpa/budget-doctor/service/gcp/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

func NewService(ctx context.Context, projectID, billingAccount string) (*service, error) {
	credentials, err := gcpconfig.NewService(projectID).GetCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve GCP credentials: %w", err)
	}

	bqClient, err := bigquery.NewClient(ctx, projectID, option.WithCredentials(credentials))
	if err != nil {
		return nil, fmt.Errorf("failed to create BigQuery client: %w", err)
	}

	return &service{
		projectID:      projectID,
		billingAccount: billingAccount,
		bqClient:       bqClient,
	}, nil
}

// Close closes the BigQuery client
func (s *service) Close() error {
	return s.bqClient.Close()
}

// FetchCurrent implements service.CostDataSource. The billing export splits
// cost and tax per line, which feeds the pre-tax field directly.
func (s *service) FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	endDate := now.Format("2006-01-02")

	query := fmt.Sprintf(`
		SELECT
			service.description AS service_name,
			SUM(cost) AS total_cost,
			SUM(IFNULL(tax.amount, 0)) AS total_tax,
			SUM(usage.amount) AS usage_amount,
			ANY_VALUE(usage.unit) AS usage_unit
		FROM %s
		WHERE
			project.id = @projectID
			AND DATE(usage_start_time) >= @startDate
			AND DATE(usage_start_time) < @endDate
		GROUP BY service.description
		ORDER BY total_cost DESC
	`, s.exportTable())

	q := s.bqClient.Query(query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "projectID", Value: s.projectID},
		{Name: "startDate", Value: startDate},
		{Name: "endDate", Value: endDate},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute BigQuery query: %w", err)
	}

	var records []model.RawServiceRecord

	for {
		var row struct {
			ServiceName string  `bigquery:"service_name"`
			TotalCost   float64 `bigquery:"total_cost"`
			TotalTax    float64 `bigquery:"total_tax"`
			UsageAmount float64 `bigquery:"usage_amount"`
			UsageUnit   string  `bigquery:"usage_unit"`
		}

		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BigQuery row: %w", err)
		}

		record := model.RawServiceRecord{
			ServiceName: row.ServiceName,
			Amount:      row.TotalCost,
		}
		if row.TotalTax > 0 {
			preTax := row.TotalCost - row.TotalTax
			record.PreTaxAmount = &preTax
		}
		if row.UsageAmount > 0 {
			usage := row.UsageAmount
			record.UsageQuantity = &usage
			record.UsageUnit = row.UsageUnit
		}

		records = append(records, record)
	}

	return records, nil
}

// FetchHistory implements service.CostDataSource with one total per day
func (s *service) FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error) {
	now := time.Now()
	startDate := now.AddDate(0, 0, -days).Format("2006-01-02")
	endDate := now.Format("2006-01-02")

	query := fmt.Sprintf(`
		SELECT
			CAST(DATE(usage_start_time) AS STRING) AS usage_day,
			SUM(cost) AS total_cost
		FROM %s
		WHERE
			project.id = @projectID
			AND DATE(usage_start_time) >= @startDate
			AND DATE(usage_start_time) < @endDate
		GROUP BY usage_day
		ORDER BY usage_day ASC
	`, s.exportTable())

	q := s.bqClient.Query(query)
	q.Parameters = []bigquery.QueryParameter{
		{Name: "projectID", Value: s.projectID},
		{Name: "startDate", Value: startDate},
		{Name: "endDate", Value: endDate},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute BigQuery query: %w", err)
	}

	var history []model.DailyCost

	for {
		var row struct {
			UsageDay  string  `bigquery:"usage_day"`
			TotalCost float64 `bigquery:"total_cost"`
		}

		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BigQuery row: %w", err)
		}

		date, err := time.Parse("2006-01-02", row.UsageDay)
		if err != nil {
			continue
		}

		history = append(history, model.DailyCost{
			Date:   date,
			Amount: row.TotalCost,
		})
	}

	return history, nil
}

// exportTable builds the billing export table name:
// project.dataset.gcp_billing_export_v1_BILLING_ACCOUNT_ID
func (s *service) exportTable() string {
	billingAccountID := strings.ReplaceAll(s.billingAccount, "billingAccounts/", "")
	billingAccountID = strings.ReplaceAll(billingAccountID, "-", "_")
	return fmt.Sprintf("%s.%s.gcp_billing_export_v1_%s", s.projectID, "billing_export", billingAccountID)
}
