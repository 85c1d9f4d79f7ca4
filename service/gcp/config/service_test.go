package gcpconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialScopesCoverBillingAndExportQueries(t *testing.T) {
	assert.Contains(t, credentialScopes, "https://www.googleapis.com/auth/cloud-billing")
	assert.Contains(t, credentialScopes, "https://www.googleapis.com/auth/cloud-platform.read-only")
	assert.Contains(t, credentialScopes, "https://www.googleapis.com/auth/bigquery")
}

func TestGetProjectID(t *testing.T) {
	assert.Equal(t, "my-project", NewService("my-project").GetProjectID())
}
