package portfolio_test

import (
	"testing"

	"github.com/coincraft/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryStats(t *testing.T) {
	s, _ := newTestStore(t)
	holding := apple(t, s)

	stats, err := s.HistoryStats(holding.ID)
	require.Nil(t, err)

	assert.Equal(t, 48, stats.Points)
	assert.Greater(t, stats.Max, stats.Min)
	assert.GreaterOrEqual(t, stats.Mean, stats.Min)
	assert.LessOrEqual(t, stats.Mean, stats.Max)
	assert.Greater(t, stats.StdDev, 0.0)

	// SMA starts once the window is filled: 48 points with a window of 5
	// leave 44 smoothed points, timestamped at the window end.
	require.Len(t, stats.SMA, 44)
	assert.Equal(t, holding.PriceHistory[4].Time, stats.SMA[0].Time)

	for _, point := range stats.SMA {
		price, _ := point.Price.Float64()
		assert.GreaterOrEqual(t, price, stats.Min)
		assert.LessOrEqual(t, price, stats.Max)
	}
}

func TestHistoryStatsNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.HistoryStats(uuid.New())
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}
