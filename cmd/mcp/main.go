package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/elC0mpa/budget-doctor/cmd/mcp/tools"
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
	gcpbilling "github.com/elC0mpa/budget-doctor/service/gcp/billing"
	gcpidentity "github.com/elC0mpa/budget-doctor/service/gcp/identity"
	"github.com/elC0mpa/budget-doctor/service/store"
	"github.com/elC0mpa/budget-doctor/service/summary"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	deps, cleanup, err := buildDeps(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Startup error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	s := server.NewMCPServer(
		"budget-doctor-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterBudgetTools(s, deps)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func buildDeps(ctx context.Context, cfg *Config) (tools.Deps, func(), error) {
	tracker := apitracker.NewService(apitracker.DefaultPricing())

	var costSource service.CostDataSource
	var usageSource service.UsageDataSource
	var identityService service.IdentityService
	var advisor service.NaturalLanguageAdvisor

	switch cfg.Provider {
	case "aws":
		cfgService := awsconfig.NewService()
		awsCfg, err := cfgService.GetAWSCfg(ctx, cfg.AWSRegion, cfg.AWSProfile)
		if err != nil {
			return tools.Deps{}, nil, err
		}
		costSource = awscostexplorer.NewService(awsCfg, tracker)
		usageSource = awsec2.NewService(awsCfg)
		identityService = awssts.NewService(awsCfg)
		modelID := cfg.BedrockModelID
		if modelID == "" {
			modelID = awsbedrock.DefaultModelID
		}
		advisor = awsbedrock.NewService(awsCfg, modelID, tracker)
	case "gcp":
		billingService, err := gcpbilling.NewService(ctx, cfg.GCPProjectID, cfg.GCPBillingAccount)
		if err != nil {
			return tools.Deps{}, nil, err
		}
		costSource = billingService
		identity, err := gcpidentity.NewService(ctx, cfg.GCPProjectID)
		if err != nil {
			return tools.Deps{}, nil, err
		}
		identityService = identity
	case "azure":
		azureCfg, err := azureconfig.NewService(cfg.AzureSubscriptionID)
		if err != nil {
			return tools.Deps{}, nil, err
		}
		costService, err := azurecostmanagement.NewService(cfg.AzureSubscriptionID, azureCfg.GetCredential())
		if err != nil {
			return tools.Deps{}, nil, err
		}
		costSource = costService
		identity, err := azureidentity.NewService(cfg.AzureSubscriptionID, azureCfg.GetCredential())
		if err != nil {
			return tools.Deps{}, nil, err
		}
		identityService = identity
	default:
		return tools.Deps{}, nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	var observationStore service.ObservationStore
	cleanup := func() {}
	if logService, err := store.NewService(cfg.ObservationLog); err != nil {
		slog.Warn("observation log unavailable, history persistence disabled", "err", err)
	} else {
		observationStore = logService
		cleanup = func() {
			if err := logService.Close(); err != nil {
				slog.Warn("closing observation log", "err", err)
			}
		}
	}

	builder := summary.NewService(
		costSource,
		usageSource,
		identityService,
		advisor,
		observationStore,
		tracker,
		model.BudgetThresholds{WarningLimit: cfg.WarningLimit, CriticalLimit: cfg.CriticalLimit},
		cfg.HistoryDays,
	)

	return tools.Deps{Builder: builder, Tracker: tracker}, cleanup, nil
}
