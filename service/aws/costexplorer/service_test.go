package awscostexplorer

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromGroupCarriesCostAndUsage(t *testing.T) {
	group := types.Group{
		Keys: []string{"Amazon EC2"},
		Metrics: map[string]types.MetricValue{
			"BlendedCost":   {Amount: aws.String("12.34"), Unit: aws.String("USD")},
			"UsageQuantity": {Amount: aws.String("720"), Unit: aws.String("Hrs")},
		},
	}

	record, ok := recordFromGroup(group)
	require.True(t, ok)

	assert.Equal(t, "Amazon EC2", record.ServiceName)
	assert.Equal(t, 12.34, record.Amount)
	require.NotNil(t, record.UsageQuantity)
	assert.Equal(t, 720.0, *record.UsageQuantity)
	assert.Equal(t, "Hrs", record.UsageUnit)
}

func TestRecordFromGroupLeavesPreTaxEmpty(t *testing.T) {
	// blended vs unblended is rate allocation, not a tax split, so no
	// pre-tax figure is derived from Cost Explorer
	group := types.Group{
		Keys: []string{"Amazon S3"},
		Metrics: map[string]types.MetricValue{
			"BlendedCost": {Amount: aws.String("1.50"), Unit: aws.String("USD")},
		},
	}

	record, ok := recordFromGroup(group)
	require.True(t, ok)
	assert.Nil(t, record.PreTaxAmount)
}

func TestRecordFromGroupSkipsUnparseableCost(t *testing.T) {
	group := types.Group{
		Keys: []string{"Amazon S3"},
		Metrics: map[string]types.MetricValue{
			"BlendedCost": {Amount: aws.String("not-a-number"), Unit: aws.String("USD")},
		},
	}

	_, ok := recordFromGroup(group)
	assert.False(t, ok)
}
