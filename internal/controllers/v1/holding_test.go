package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/coincraft/backend/internal/controllers/v1"
	"github.com/coincraft/backend/internal/models"
	"github.com/coincraft/backend/internal/uuid"
	"github.com/coincraft/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHoldingsSeeded(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodGet, "/v1/holdings", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.HoldingListResponse
	test.DecodeResponse(t, &recorder, &response)
	require.Len(t, response.Data, 3)

	for _, holding := range response.Data {
		assert.True(t, holding.CurrentPrice.IsPositive())
		assert.NotEmpty(t, holding.PriceHistory)
		assert.True(t, holding.Value.Equal(holding.Shares.Mul(holding.CurrentPrice)))
	}
}

func TestCreateHolding(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodPost, "/v1/holdings", `{"symbol": "NVDA", "name": "NVIDIA Corporation", "shares": 10, "purchasePrice": 500}`)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	var response v1.HoldingResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)

	// The starting price is the purchase price with at most ±5% jitter
	low := decimal.NewFromInt(475)
	high := decimal.NewFromInt(525)
	assert.True(t, response.Data.CurrentPrice.GreaterThanOrEqual(low), "price is %s", response.Data.CurrentPrice)
	assert.True(t, response.Data.CurrentPrice.LessThanOrEqual(high), "price is %s", response.Data.CurrentPrice)

	assert.NotEmpty(t, response.Data.PriceHistory)
	assert.False(t, response.Data.PurchaseDate.IsZero(), "purchase date should default to the current date")
}

func TestCreateHoldingInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing symbol", `{"name": "x", "shares": 1, "purchasePrice": 10}`},
		{"missing name", `{"symbol": "X", "shares": 1, "purchasePrice": 10}`},
		{"zero shares", `{"symbol": "X", "name": "x", "shares": 0, "purchasePrice": 10}`},
		{"zero price", `{"symbol": "X", "name": "x", "shares": 1, "purchasePrice": 0}`},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			co, _ := newController()

			recorder := test.Request(co, t, http.MethodPost, "/v1/holdings", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func TestGetHolding(t *testing.T) {
	co, d := newController()

	holdings := d.Portfolio.List()
	require.NotEmpty(t, holdings)

	recorder := test.Request(co, t, http.MethodGet, "/v1/holdings/"+holdings[0].ID.String(), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.HoldingResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, holdings[0].Symbol, response.Data.Symbol)
}

func TestGetHoldingUnknownID(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodGet, "/v1/holdings/"+uuid.NewString(), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func TestGetHoldingStats(t *testing.T) {
	co, d := newController()

	holdings := d.Portfolio.List()
	require.NotEmpty(t, holdings)

	recorder := test.Request(co, t, http.MethodGet, "/v1/holdings/"+holdings[0].ID.String()+"/stats", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.HoldingStatsResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.Equal(t, len(holdings[0].PriceHistory), response.Data.Points)
	assert.LessOrEqual(t, response.Data.Min, response.Data.Max)
	assert.NotEmpty(t, response.Data.SMA)
}

func TestGetHoldingStatsUnknownID(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodGet, "/v1/holdings/"+uuid.NewString()+"/stats", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNotFound)
}

func TestUpdateHolding(t *testing.T) {
	co, d := newController()

	holdings := d.Portfolio.List()
	require.NotEmpty(t, holdings)

	recorder := test.Request(co, t, http.MethodPatch, "/v1/holdings/"+holdings[0].ID.String(), `{"symbol": "AAPL", "name": "Apple Inc.", "shares": 60, "purchasePrice": 150.25}`)
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.HoldingResponse
	test.DecodeResponse(t, &recorder, &response)
	require.NotNil(t, response.Data)
	assert.True(t, response.Data.Shares.Equal(decimal.NewFromInt(60)))
}

func TestDeleteHolding(t *testing.T) {
	co, d := newController()

	holdings := d.Portfolio.List()
	require.NotEmpty(t, holdings)

	recorder := test.Request(co, t, http.MethodDelete, "/v1/holdings/"+holdings[0].ID.String(), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
	assert.Len(t, d.Portfolio.List(), len(holdings)-1)
}

func TestDeleteHoldingUnknownID(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodDelete, "/v1/holdings/"+uuid.NewString(), "")
	test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
}

func TestGetPortfolio(t *testing.T) {
	co, d := newController()

	recorder := test.Request(co, t, http.MethodGet, "/v1/portfolio", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.ValuationResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Data.TotalValue.IsPositive())
	assert.True(t, response.Data.TotalCost.IsPositive())
	assert.True(t, response.Data.GainLoss.Equal(response.Data.TotalValue.Sub(response.Data.TotalCost)))

	var holdings []models.Holding = d.Portfolio.List()
	var want decimal.Decimal
	for _, holding := range holdings {
		want = want.Add(holding.Value())
	}
	assert.True(t, response.Data.TotalValue.Equal(want))
}
