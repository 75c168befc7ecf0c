package models

import (
	"strings"
	"time"

	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PriceHistoryLimit is the maximum number of price points kept per holding.
// Older points are evicted first.
const PriceHistoryLimit = 50

// PricePoint is a single observed price at a point in time.
type PricePoint struct {
	Time  time.Time       `json:"time"`
	Price decimal.Decimal `json:"price"`
}

// Holding represents a single investment position.
type Holding struct {
	DefaultModel
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	PurchaseDate  types.Date      `json:"purchaseDate"`
	PriceHistory  []PricePoint    `json:"priceHistory"`
}

// Validate checks the holding for invalid values.
func (h *Holding) Validate() error {
	h.Symbol = strings.TrimSpace(h.Symbol)
	h.Name = strings.TrimSpace(h.Name)

	if h.Symbol == "" {
		return ErrHoldingSymbolRequired
	}

	if h.Name == "" {
		return ErrHoldingNameRequired
	}

	if !h.Shares.IsPositive() {
		return ErrHoldingSharesNotPositive
	}

	if !h.PurchasePrice.IsPositive() {
		return ErrHoldingPriceNotPositive
	}

	return nil
}

// Value returns the current market value of the position.
func (h Holding) Value() decimal.Decimal {
	return h.Shares.Mul(h.CurrentPrice)
}

// CostBasis returns the amount originally paid for the position.
func (h Holding) CostBasis() decimal.Decimal {
	return h.Shares.Mul(h.PurchasePrice)
}

// GainLoss returns the unrealized gain or loss of the position.
func (h Holding) GainLoss() decimal.Decimal {
	return h.Value().Sub(h.CostBasis())
}
