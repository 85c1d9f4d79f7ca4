package flag

import (
	"flag"
	"fmt"

	"github.com/elC0mpa/budget-doctor/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	provider := flag.String("provider", "aws", "Cloud provider (aws, gcp or azure)")
	days := flag.Int("days", 30, "Days of spend history to load")
	warning := flag.Float64("warning", 0, "Warning budget limit in USD (overrides BUDGET_WARNING_LIMIT)")
	critical := flag.Float64("critical", 0, "Critical budget limit in USD (overrides BUDGET_CRITICAL_LIMIT)")
	forecast := flag.Bool("forecast", false, "Display the spend growth forecast")
	session := flag.Bool("session", false, "Display the API self-cost ledger for this session")
	ask := flag.String("ask", "", "Ask the advisor a question about the usage summary")

	region := flag.String("region", "us-east-1", "AWS region")
	profile := flag.String("profile", "", "AWS profile configuration")

	project := flag.String("project", "", "GCP project ID")
	billingAccount := flag.String("billing-account", "", "GCP billing account ID")

	subscription := flag.String("subscription", "", "Azure subscription ID")

	flag.Parse()

	switch *provider {
	case "aws", "gcp", "azure":
	default:
		return model.Flags{}, fmt.Errorf("unknown provider %q", *provider)
	}

	if *days <= 0 {
		return model.Flags{}, fmt.Errorf("days must be positive, got %d", *days)
	}

	return model.Flags{
		Provider:       *provider,
		HistoryDays:    *days,
		WarningLimit:   *warning,
		CriticalLimit:  *critical,
		Forecast:       *forecast,
		Session:        *session,
		Ask:            *ask,
		Region:         *region,
		Profile:        *profile,
		Project:        *project,
		BillingAccount: *billingAccount,
		Subscription:   *subscription,
	}, nil
}
