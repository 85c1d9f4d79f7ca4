package azurecostmanagement

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/costmanagement/armcostmanagement"
	"github.com/elC0mpa/budget-doctor/model"
)

type service struct {
	subscriptionID string
	client         *armcostmanagement.QueryClient
}

// CostManagementService exposes Azure Cost Management as a cost data source
type CostManagementService interface {
	FetchCurrent(ctx context.Context) ([]model.RawServiceRecord, error)
	FetchHistory(ctx context.Context, days int) ([]model.DailyCost, error)
}

// Credential is passed to allow reuse across services
type Credential = azidentity.DefaultAzureCredential
