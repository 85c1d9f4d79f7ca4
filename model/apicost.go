package model

import "time"

// APIName identifies a metered external API the system itself calls
type APIName string

const (
	APICostExplorerCall APIName = "cost-explorer-call"
	APIBedrockInvoke    APIName = "bedrock-invoke"
)

// APICallRecord is one metered call made by the system itself. Records are
// appended to a session ledger at call time and never mutated.
type APICallRecord struct {
	API          APIName
	Operation    string
	Units        int
	InputTokens  int
	OutputTokens int
	Cost         float64
	Timestamp    time.Time
}

// APIUsage aggregates the ledger for a single API
type APIUsage struct {
	API          APIName
	CallCount    int
	TotalCost    float64
	InputTokens  int
	OutputTokens int
}

// SessionSummary is the rolled-up self-cost of the current session.
// TotalCost equals the exact sum of all recorded call costs.
type SessionSummary struct {
	TotalCost float64
	CallCount int
	PerAPI    map[APIName]APIUsage
}
