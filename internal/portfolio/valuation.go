package portfolio

import (
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Valuation are the aggregate figures of the whole portfolio.
type Valuation struct {
	TotalValue      decimal.Decimal `json:"totalValue"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	GainLoss        decimal.Decimal `json:"gainLoss"`
	GainLossPercent decimal.Decimal `json:"gainLossPercent"`
}

// Valuation returns the current value, cost basis and unrealized gain or
// loss of the portfolio. The percentage is 0 for an empty portfolio.
func (s *Store) Valuation() Valuation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var valuation Valuation
	for _, holding := range s.holdings {
		valuation.TotalValue = valuation.TotalValue.Add(holding.Value())
		valuation.TotalCost = valuation.TotalCost.Add(holding.CostBasis())
	}

	valuation.GainLoss = valuation.TotalValue.Sub(valuation.TotalCost)
	if valuation.TotalCost.IsPositive() {
		valuation.GainLossPercent = valuation.GainLoss.Div(valuation.TotalCost).Mul(oneHundred)
	}

	return valuation
}
