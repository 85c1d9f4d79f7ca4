package apitracker

import (
	"time"

	"github.com/elC0mpa/budget-doctor/model"
)

func NewService(pricing Pricing) *service {
	return &service{
		pricing: pricing,
	}
}

// RecordCostExplorerCall appends a flat-rate Cost Explorer call to the ledger
func (s *service) RecordCostExplorerCall(operation string) model.APICallRecord {
	record := model.APICallRecord{
		API:       model.APICostExplorerCall,
		Operation: operation,
		Units:     1,
		Cost:      s.pricing.CostExplorerPerCall,
		Timestamp: time.Now(),
	}

	s.append(record)
	return record
}

// RecordBedrockInvoke appends a token-priced model invocation to the ledger
func (s *service) RecordBedrockInvoke(modelID string, inputTokens, outputTokens int) model.APICallRecord {
	inputCost := float64(inputTokens) / 1000 * s.pricing.BedrockInputPer1K
	outputCost := float64(outputTokens) / 1000 * s.pricing.BedrockOutputPer1K

	record := model.APICallRecord{
		API:          model.APIBedrockInvoke,
		Operation:    modelID,
		Units:        inputTokens + outputTokens,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		Cost:         inputCost + outputCost,
		Timestamp:    time.Now(),
	}

	s.append(record)
	return record
}

func (s *service) append(record model.APICallRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
}

// SessionSummary rolls the ledger up into per-API usage. The returned total
// is the exact sum of every recorded cost. Reads see a consistent snapshot
// even while appends are in flight.
func (s *service) SessionSummary() model.SessionSummary {
	s.mu.Lock()
	snapshot := make([]model.APICallRecord, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	summary := model.SessionSummary{
		PerAPI: make(map[model.APIName]model.APIUsage),
	}

	for _, record := range snapshot {
		usage := summary.PerAPI[record.API]
		usage.API = record.API
		usage.CallCount++
		usage.TotalCost += record.Cost
		usage.InputTokens += record.InputTokens
		usage.OutputTokens += record.OutputTokens
		summary.PerAPI[record.API] = usage

		summary.TotalCost += record.Cost
		summary.CallCount++
	}

	return summary
}

// Records returns a copy of the ledger in append order
func (s *service) Records() []model.APICallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]model.APICallRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}
