package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/coincraft/backend/internal/controllers/v1"
	"github.com/coincraft/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAnalytics(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodGet, "/v1/analytics", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.AnalyticsResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.True(t, response.Data.Summary.IncomeTotal.Equal(decimal.NewFromInt(4200)))
	assert.True(t, response.Data.Summary.ExpenseTotal.Equal(decimal.NewFromInt(1015)))
	assert.True(t, response.Data.Summary.Balance.Equal(decimal.NewFromInt(3185)))

	require.Len(t, response.Data.ExpenseDistribution, 3)
	assert.Equal(t, "Rent", response.Data.ExpenseDistribution[0].Category)
	assert.True(t, response.Data.ExpenseDistribution[0].Total.Equal(decimal.NewFromInt(850)))
	assert.Equal(t, "Transportation", response.Data.ExpenseDistribution[2].Category)

	require.Len(t, response.Data.BudgetPerformance, 4)
	for _, performance := range response.Data.BudgetPerformance {
		assert.False(t, performance.OverBudget, "no seeded budget is exceeded")
		assert.True(t, performance.Remaining.Equal(performance.Limit.Sub(performance.Spent)))
	}
}

func TestGetAnalyticsOverBudget(t *testing.T) {
	co, _ := newController()

	recorder := test.Request(co, t, http.MethodPost, "/v1/transactions", `{"type": "expense", "amount": 300, "category": "Groceries"}`)
	test.AssertHTTPStatus(t, &recorder, http.StatusCreated)

	recorder = test.Request(co, t, http.MethodGet, "/v1/analytics", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response v1.AnalyticsResponse
	test.DecodeResponse(t, &recorder, &response)

	var found bool
	for _, performance := range response.Data.BudgetPerformance {
		if performance.Category == "Groceries" {
			found = true
			assert.True(t, performance.OverBudget, "420 spent of 400 should flag over-budget")
			assert.True(t, performance.Utilization.Equal(decimal.NewFromInt(105)))
		}
	}
	assert.True(t, found)
}
