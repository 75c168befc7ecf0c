package portfolio

import (
	"github.com/coincraft/backend/internal/models"
	"github.com/google/uuid"
	"github.com/markcheno/go-talib"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// smaPeriod is the window of the moving average smoothing the price chart.
const smaPeriod = 5

// HistoryStats summarizes the recorded price history of a holding.
type HistoryStats struct {
	Points int     `json:"points"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`

	// SMA is the simple moving average over the history, one point per
	// history entry starting once the window is filled.
	SMA []models.PricePoint `json:"sma"`
}

// HistoryStats computes summary statistics and a moving average over the
// price history of the holding with the given ID.
func (s *Store) HistoryStats(id uuid.UUID) (HistoryStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return HistoryStats{}, models.ErrResourceNotFound
	}

	history := s.holdings[i].PriceHistory
	stats := HistoryStats{Points: len(history)}
	if len(history) == 0 {
		return stats, nil
	}

	prices := make([]float64, len(history))
	for p, point := range history {
		prices[p], _ = point.Price.Float64()
	}

	stats.Min = floats.Min(prices)
	stats.Max = floats.Max(prices)
	stats.Mean = stat.Mean(prices, nil)
	if len(prices) > 1 {
		stats.StdDev = stat.StdDev(prices, nil)
	}

	if len(prices) >= smaPeriod {
		sma := talib.Sma(prices, smaPeriod)
		for p := smaPeriod - 1; p < len(sma); p++ {
			stats.SMA = append(stats.SMA, models.PricePoint{
				Time:  history[p].Time,
				Price: decimal.NewFromFloat(sma[p]),
			})
		}
	}

	return stats, nil
}
