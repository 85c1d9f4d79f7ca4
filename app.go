package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
	awsbedrock "github.com/elC0mpa/budget-doctor/service/aws/bedrock"
	awsconfig "github.com/elC0mpa/budget-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/budget-doctor/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/budget-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/budget-doctor/service/aws/sts"
	azureconfig "github.com/elC0mpa/budget-doctor/service/azure/config"
	azurecostmanagement "github.com/elC0mpa/budget-doctor/service/azure/costmanagement"
	azureidentity "github.com/elC0mpa/budget-doctor/service/azure/identity"
	"github.com/elC0mpa/budget-doctor/service/flag"
	gcpbilling "github.com/elC0mpa/budget-doctor/service/gcp/billing"
	gcpidentity "github.com/elC0mpa/budget-doctor/service/gcp/identity"
	"github.com/elC0mpa/budget-doctor/service/store"
	"github.com/elC0mpa/budget-doctor/service/summary"
	"github.com/elC0mpa/budget-doctor/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	tracker := apitracker.NewService(pricingFromEnv())
	thresholds := resolveThresholds(flags)

	utils.StartSpinner()

	builder, cleanup, err := buildSummaryService(ctx, flags, tracker, thresholds)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}
	defer cleanup()

	if flags.Ask != "" {
		answer, err := builder.Ask(ctx, flags.Ask)
		utils.StopSpinner()
		if err != nil {
			panic(err)
		}
		fmt.Printf("\n%s\n", answer)
		if flags.Session {
			utils.DrawSessionTable(tracker.SessionSummary())
		}
		return
	}

	usageSummary, err := builder.BuildSummary(ctx)
	utils.StopSpinner()
	if err != nil {
		panic(err)
	}

	utils.DrawSummaryTable(usageSummary)
	utils.DrawInstanceTable(usageSummary.Instances)

	if flags.Forecast {
		accountID := ""
		if usageSummary.Account != nil {
			accountID = usageSummary.Account.AccountID
		}
		utils.DrawForecastChart(accountID, usageSummary.Forecast)
	}

	if flags.Session {
		utils.DrawSessionTable(usageSummary.SessionCosts)
	}
}

func buildSummaryService(ctx context.Context, flags model.Flags, tracker apitracker.TrackerService, thresholds model.BudgetThresholds) (summary.BuilderService, func(), error) {
	var costSource service.CostDataSource
	var usageSource service.UsageDataSource
	var identityService service.IdentityService
	var advisor service.NaturalLanguageAdvisor

	switch flags.Provider {
	case "aws":
		cfgService := awsconfig.NewService()
		awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return nil, nil, err
		}
		costSource = awscostexplorer.NewService(awsCfg, tracker)
		usageSource = awsec2.NewService(awsCfg)
		identityService = awssts.NewService(awsCfg)
		advisor = awsbedrock.NewService(awsCfg, advisorModelID(), tracker)
	case "gcp":
		billingService, err := gcpbilling.NewService(ctx, flags.Project, flags.BillingAccount)
		if err != nil {
			return nil, nil, err
		}
		costSource = billingService
		identity, err := gcpidentity.NewService(ctx, flags.Project)
		if err != nil {
			return nil, nil, err
		}
		identityService = identity
	case "azure":
		cfgService, err := azureconfig.NewService(flags.Subscription)
		if err != nil {
			return nil, nil, err
		}
		costService, err := azurecostmanagement.NewService(flags.Subscription, cfgService.GetCredential())
		if err != nil {
			return nil, nil, err
		}
		costSource = costService
		identity, err := azureidentity.NewService(flags.Subscription, cfgService.GetCredential())
		if err != nil {
			return nil, nil, err
		}
		identityService = identity
	}

	var observationStore service.ObservationStore
	cleanup := func() {}
	if logService, err := store.NewService(observationLogPath()); err != nil {
		slog.Warn("observation log unavailable, history persistence disabled", "err", err)
	} else {
		observationStore = logService
		cleanup = func() {
			if err := logService.Close(); err != nil {
				slog.Warn("closing observation log", "err", err)
			}
		}
	}

	return summary.NewService(
		costSource,
		usageSource,
		identityService,
		advisor,
		observationStore,
		tracker,
		thresholds,
		flags.HistoryDays,
	), cleanup, nil
}

// resolveThresholds prefers explicit flags, falls back to environment,
// then to the default $80 warning / $100 critical limits.
func resolveThresholds(flags model.Flags) model.BudgetThresholds {
	thresholds := model.BudgetThresholds{
		WarningLimit:  envFloat("BUDGET_WARNING_LIMIT", 80),
		CriticalLimit: envFloat("BUDGET_CRITICAL_LIMIT", 100),
	}

	if flags.WarningLimit > 0 {
		thresholds.WarningLimit = flags.WarningLimit
	}
	if flags.CriticalLimit > 0 {
		thresholds.CriticalLimit = flags.CriticalLimit
	}

	return thresholds
}

func pricingFromEnv() apitracker.Pricing {
	pricing := apitracker.DefaultPricing()
	pricing.CostExplorerPerCall = envFloat("BUDGET_COST_EXPLORER_RATE", pricing.CostExplorerPerCall)
	pricing.BedrockInputPer1K = envFloat("BUDGET_BEDROCK_INPUT_RATE", pricing.BedrockInputPer1K)
	pricing.BedrockOutputPer1K = envFloat("BUDGET_BEDROCK_OUTPUT_RATE", pricing.BedrockOutputPer1K)
	return pricing
}

func observationLogPath() string {
	if path := os.Getenv("BUDGET_OBSERVATION_LOG"); path != "" {
		return path
	}
	return "budget_doctor.db"
}

func advisorModelID() string {
	if modelID := os.Getenv("BEDROCK_MODEL_ID"); modelID != "" {
		return modelID
	}
	return awsbedrock.DefaultModelID
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("ignoring unparseable environment value", "key", key, "value", raw)
		return fallback
	}
	return value
}
