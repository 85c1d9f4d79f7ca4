package apitracker

import (
	"sync"

	"github.com/elC0mpa/budget-doctor/model"
)

// Pricing configures the per-API rates. All rates are in USD and must be
// non-negative; token rates are per 1K tokens.
type Pricing struct {
	CostExplorerPerCall float64
	BedrockInputPer1K   float64
	BedrockOutputPer1K  float64
}

// DefaultPricing mirrors published AWS rates: Cost Explorer at $0.01 per
// request, Bedrock token rates for Claude 3 Haiku.
func DefaultPricing() Pricing {
	return Pricing{
		CostExplorerPerCall: 0.01,
		BedrockInputPer1K:   0.00025,
		BedrockOutputPer1K:  0.00125,
	}
}

type service struct {
	pricing Pricing

	mu      sync.Mutex
	records []model.APICallRecord
}

// TrackerService meters the system's own calls to external APIs so that
// self-cost is never invisible to the budget it protects. The ledger is
// additive-only and session-scoped.
type TrackerService interface {
	RecordCostExplorerCall(operation string) model.APICallRecord
	RecordBedrockInvoke(modelID string, inputTokens, outputTokens int) model.APICallRecord
	SessionSummary() model.SessionSummary
	Records() []model.APICallRecord
}
