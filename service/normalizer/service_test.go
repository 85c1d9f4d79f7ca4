package normalizer

import (
	"math"
	"testing"
	"time"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestNormalizePreservesOrderAndTotal(t *testing.T) {
	asOf := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	records := []model.RawServiceRecord{
		{ServiceName: "Amazon Elastic Compute Cloud - Compute", Amount: 1.50},
		{ServiceName: "AWS Cost Explorer", Amount: 0.21},
		{ServiceName: "Amazon Simple Storage Service", Amount: 0.0000004},
	}

	obs, rejected := NewService().Normalize(asOf, records)

	require.Zero(t, rejected)
	require.Len(t, obs.LineItems, 3)
	assert.Equal(t, "Amazon Elastic Compute Cloud - Compute", obs.LineItems[0].ServiceKey)
	assert.Equal(t, "AWS Cost Explorer", obs.LineItems[1].ServiceKey)
	// sub-microcent lines are retained, not dropped
	assert.Equal(t, 0.0000004, obs.LineItems[2].Amount)
	assert.InDelta(t, 1.7100004, obs.TotalAmount, 1e-9)
	assert.Equal(t, asOf, obs.Date)
}

func TestNormalizeRejectsMalformedRows(t *testing.T) {
	records := []model.RawServiceRecord{
		{ServiceName: "Amazon EC2", Amount: 2.00},
		{ServiceName: "bad-negative", Amount: -1.00},
		{ServiceName: "bad-nan", Amount: math.NaN()},
		{ServiceName: "bad-inf", Amount: math.Inf(1)},
		{ServiceName: "Amazon S3", Amount: 0.50},
	}

	obs, rejected := NewService().Normalize(time.Now(), records)

	assert.Equal(t, 3, rejected)
	require.Len(t, obs.LineItems, 2)
	assert.InDelta(t, 2.50, obs.TotalAmount, 1e-9)
}

func TestNormalizeMapsEmptyServiceNameToOther(t *testing.T) {
	records := []model.RawServiceRecord{
		{ServiceName: "", Amount: 0.10},
		{ServiceName: "   ", Amount: 0.20},
	}

	obs, rejected := NewService().Normalize(time.Now(), records)

	require.Zero(t, rejected)
	require.Len(t, obs.LineItems, 2)
	for _, item := range obs.LineItems {
		assert.Equal(t, model.OtherServiceKey, item.ServiceKey)
		assert.Equal(t, "Other services", item.DisplayName)
	}
}

func TestNormalizeDerivesTaxSplit(t *testing.T) {
	records := []model.RawServiceRecord{
		{ServiceName: "Amazon RDS", Amount: 1.10, PreTaxAmount: floatPtr(1.00)},
		{ServiceName: "Amazon S3", Amount: 0.30},
	}

	obs, rejected := NewService().Normalize(time.Now(), records)

	require.Zero(t, rejected)
	withSplit := obs.LineItems[0]
	require.True(t, withSplit.HasTaxSplit())
	assert.InDelta(t, 0.10, withSplit.TaxAmount, 1e-6)
	assert.InDelta(t, *withSplit.PreTaxAmount+withSplit.TaxAmount, withSplit.Amount, 1e-6)

	withoutSplit := obs.LineItems[1]
	assert.False(t, withoutSplit.HasTaxSplit())
	assert.Zero(t, withoutSplit.TaxAmount)
}

func TestLineItemUnitCost(t *testing.T) {
	item := model.LineItem{Amount: 4.50, UsageQuantity: floatPtr(450), UsageUnit: "Requests"}
	unitCost, ok := item.UnitCost()
	require.True(t, ok)
	assert.InDelta(t, 0.01, unitCost, 1e-9)

	noQty := model.LineItem{Amount: 4.50}
	_, ok = noQty.UnitCost()
	assert.False(t, ok)

	zeroQty := model.LineItem{Amount: 4.50, UsageQuantity: floatPtr(0)}
	_, ok = zeroQty.UnitCost()
	assert.False(t, ok)
}
