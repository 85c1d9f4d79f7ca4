package main

import (
	"os"
	"strconv"
)

// Config holds environment-based configuration for the budget server
type Config struct {
	// Provider selects which cloud the server diagnoses (aws, gcp or azure)
	Provider string

	// AWS configuration
	AWSRegion      string
	AWSProfile     string
	BedrockModelID string

	// GCP configuration
	GCPProjectID      string
	GCPBillingAccount string

	// Azure configuration
	AzureSubscriptionID string

	// Budget configuration
	WarningLimit   float64
	CriticalLimit  float64
	HistoryDays    int
	ObservationLog string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Provider:            getEnvOrDefault("BUDGET_PROVIDER", "aws"),
		AWSRegion:           getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile:          os.Getenv("AWS_PROFILE"),
		BedrockModelID:      os.Getenv("BEDROCK_MODEL_ID"),
		GCPProjectID:        os.Getenv("GCP_PROJECT_ID"),
		GCPBillingAccount:   os.Getenv("GCP_BILLING_ACCOUNT"),
		AzureSubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
		WarningLimit:        getEnvFloat("BUDGET_WARNING_LIMIT", 80),
		CriticalLimit:       getEnvFloat("BUDGET_CRITICAL_LIMIT", 100),
		HistoryDays:         getEnvInt("BUDGET_HISTORY_DAYS", 30),
		ObservationLog:      getEnvOrDefault("BUDGET_OBSERVATION_LOG", "budget_doctor.db"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
