package v1

import (
	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/portfolio"
	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
)

type HoldingEditable struct {
	Symbol        string          `json:"symbol" example:"AAPL" default:""`                                                                // Ticker symbol of the position
	Name          string          `json:"name" example:"Apple Inc." default:""`                                                            // Name of the company or asset
	Shares        decimal.Decimal `json:"shares" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"`            // Number of shares held
	PurchasePrice decimal.Decimal `json:"purchasePrice" example:"150.25" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // Price paid per share
	PurchaseDate  types.Date      `json:"purchaseDate" example:"2024-01-10"`                                                               // Date of the purchase. Defaults to the current date
}

// model returns the store resource for the API representation of the editable fields
func (editable HoldingEditable) model() models.Holding {
	return models.Holding{
		Symbol:        editable.Symbol,
		Name:          editable.Name,
		Shares:        editable.Shares,
		PurchasePrice: editable.PurchasePrice,
		PurchaseDate:  editable.PurchaseDate,
	}
}

type Holding struct {
	models.DefaultModel
	HoldingEditable
	CurrentPrice decimal.Decimal     `json:"currentPrice" example:"175.30"` // Latest simulated price per share
	Value        decimal.Decimal     `json:"value" example:"8765"`          // Current market value of the position
	CostBasis    decimal.Decimal     `json:"costBasis" example:"7512.50"`   // Amount originally paid for the position
	GainLoss     decimal.Decimal     `json:"gainLoss" example:"1252.50"`    // Unrealized gain or loss
	PriceHistory []models.PricePoint `json:"priceHistory"`                  // Recorded price points, oldest first
}

// newHolding returns the API v1 representation of the resource
func newHolding(model models.Holding) Holding {
	return Holding{
		DefaultModel: model.DefaultModel,
		HoldingEditable: HoldingEditable{
			Symbol:        model.Symbol,
			Name:          model.Name,
			Shares:        model.Shares,
			PurchasePrice: model.PurchasePrice,
			PurchaseDate:  model.PurchaseDate,
		},
		CurrentPrice: model.CurrentPrice,
		Value:        model.Value(),
		CostBasis:    model.CostBasis(),
		GainLoss:     model.GainLoss(),
		PriceHistory: model.PriceHistory,
	}
}

type HoldingResponse struct {
	Error *string  `json:"error"` // The error, if any occurred
	Data  *Holding `json:"data"`  // The resource
}

type HoldingListResponse struct {
	Data  []Holding `json:"data"`  // List of holdings
	Error *string   `json:"error"` // The error, if any occurred
}

type HoldingStatsResponse struct {
	Error *string                 `json:"error"` // The error, if any occurred
	Data  *portfolio.HistoryStats `json:"data"`  // Price history statistics of the holding
}

type ValuationResponse struct {
	Data portfolio.Valuation `json:"data"` // Aggregate figures of the whole portfolio
}
