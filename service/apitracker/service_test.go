package apitracker

import (
	"sync"
	"testing"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostExplorerCallsAreAdditive(t *testing.T) {
	tracker := NewService(DefaultPricing())

	tracker.RecordCostExplorerCall("GetCostAndUsage")
	tracker.RecordCostExplorerCall("GetCostAndUsage")
	tracker.RecordCostExplorerCall("GetDimensionValues")

	summary := tracker.SessionSummary()
	assert.Equal(t, 3*0.01, summary.TotalCost)
	assert.Equal(t, 3, summary.CallCount)
	assert.Equal(t, 3, summary.PerAPI[model.APICostExplorerCall].CallCount)
}

func TestAdditivityHoldsAcrossInterleavedAPIs(t *testing.T) {
	tracker := NewService(DefaultPricing())

	tracker.RecordCostExplorerCall("GetCostAndUsage")
	tracker.RecordBedrockInvoke("anthropic.claude-3-haiku-20240307-v1:0", 1000, 500)
	tracker.RecordCostExplorerCall("GetCostAndUsage")
	tracker.RecordBedrockInvoke("anthropic.claude-3-haiku-20240307-v1:0", 2000, 1000)
	tracker.RecordCostExplorerCall("GetCostAndUsage")

	summary := tracker.SessionSummary()

	// 3 flat-rate calls regardless of interleaving
	assert.Equal(t, 3*0.01, summary.PerAPI[model.APICostExplorerCall].TotalCost)

	bedrock := summary.PerAPI[model.APIBedrockInvoke]
	wantBedrock := (1.0+2.0)*0.00025 + (0.5+1.0)*0.00125
	assert.InDelta(t, wantBedrock, bedrock.TotalCost, 1e-12)
	assert.Equal(t, 3000, bedrock.InputTokens)
	assert.Equal(t, 1500, bedrock.OutputTokens)

	var recordSum float64
	for _, record := range tracker.Records() {
		recordSum += record.Cost
	}
	assert.Equal(t, recordSum, summary.TotalCost)
}

func TestBedrockTokenPricing(t *testing.T) {
	pricing := Pricing{
		CostExplorerPerCall: 0.02,
		BedrockInputPer1K:   0.003,
		BedrockOutputPer1K:  0.015,
	}
	tracker := NewService(pricing)

	record := tracker.RecordBedrockInvoke("anthropic.claude-sonnet", 4000, 2000)

	assert.InDelta(t, 4*0.003+2*0.015, record.Cost, 1e-12)
	assert.Equal(t, 4000, record.InputTokens)
	assert.Equal(t, 2000, record.OutputTokens)
	assert.Equal(t, model.APIBedrockInvoke, record.API)
}

func TestZeroRatesProduceZeroCost(t *testing.T) {
	tracker := NewService(Pricing{})

	tracker.RecordCostExplorerCall("GetCostAndUsage")
	tracker.RecordBedrockInvoke("m", 100, 100)

	assert.Zero(t, tracker.SessionSummary().TotalCost)
}

func TestLedgerPreservesAppendOrder(t *testing.T) {
	tracker := NewService(DefaultPricing())

	tracker.RecordCostExplorerCall("first")
	tracker.RecordBedrockInvoke("second", 1, 1)
	tracker.RecordCostExplorerCall("third")

	records := tracker.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "first", records[0].Operation)
	assert.Equal(t, "second", records[1].Operation)
	assert.Equal(t, "third", records[2].Operation)
}

func TestConcurrentAppendsAreAtomic(t *testing.T) {
	tracker := NewService(DefaultPricing())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordCostExplorerCall("GetCostAndUsage")
			// readers may run concurrently with appends
			_ = tracker.SessionSummary()
		}()
	}
	wg.Wait()

	summary := tracker.SessionSummary()
	assert.Equal(t, 50, summary.CallCount)
	assert.InDelta(t, 50*0.01, summary.TotalCost, 1e-9)
}
