package gcpconfig

import (
	"context"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/bigquery/v2"
	"google.golang.org/api/cloudbilling/v1"
	"google.golang.org/api/cloudresourcemanager/v1"
)

// credentialScopes covers billing reads, project metadata and the billing
// export queries in BigQuery.
var credentialScopes = []string{
	cloudbilling.CloudBillingScope,
	cloudresourcemanager.CloudPlatformReadOnlyScope,
	bigquery.BigqueryScope,
}

func NewService(projectID string) *service {
	return &service{
		projectID: projectID,
	}
}

func (s *service) GetCredentials(ctx context.Context) (*google.Credentials, error) {
	// Use Application Default Credentials
	// This supports:
	// - GOOGLE_APPLICATION_CREDENTIALS environment variable
	// - gcloud auth application-default login
	// - Service account on GCE/Cloud Run/Cloud Functions
	return google.FindDefaultCredentials(ctx, credentialScopes...)
}

func (s *service) GetProjectID() string {
	return s.projectID
}
