package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/elC0mpa/budget-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *service {
	t.Helper()
	log, err := NewService(filepath.Join(t.TempDir(), "observations.db"))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestAppendAndReadBack(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	for i, amount := range []float64{10, 12, 14} {
		err := log.Append(ctx, model.CostObservation{
			Date:        time.Now().AddDate(0, 0, i-2),
			TotalAmount: amount,
			LineItems: []model.LineItem{
				{ServiceKey: "Amazon EC2", DisplayName: "Amazon EC2", Amount: amount},
			},
		})
		require.NoError(t, err)
	}

	history, err := log.History(ctx, 7)
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.Equal(t, 10.0, history[0].Amount)
	assert.Equal(t, 14.0, history[2].Amount)
	assert.True(t, history[0].Date.Before(history[2].Date))
}

func TestLatestObservationPerDayWins(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	// anchor at midday so both observations share one observed_day no
	// matter what the wall clock says
	now := time.Now()
	midday := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())

	require.NoError(t, log.Append(ctx, model.CostObservation{Date: midday.Add(-2 * time.Hour), TotalAmount: 5}))
	require.NoError(t, log.Append(ctx, model.CostObservation{Date: midday, TotalAmount: 6.5}))

	history, err := log.History(ctx, 1)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, 6.5, history[0].Amount)
}

func TestHistoryWindowExcludesOldRows(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, model.CostObservation{Date: time.Now().AddDate(0, 0, -40), TotalAmount: 1}))
	require.NoError(t, log.Append(ctx, model.CostObservation{Date: time.Now(), TotalAmount: 2}))

	history, err := log.History(ctx, 30)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, 2.0, history[0].Amount)
}

func TestEmptyLogYieldsNoHistory(t *testing.T) {
	log := newTestLog(t)

	history, err := log.History(context.Background(), 30)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestEmptyPathRejected(t *testing.T) {
	_, err := NewService("")
	assert.Error(t, err)
}
