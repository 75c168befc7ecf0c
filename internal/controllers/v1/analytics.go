package v1

import (
	"net/http"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/coincraft/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAnalytics)
	r.GET("", co.GetAnalytics)
}

type Analytics struct {
	Summary             ledger.Summary             `json:"summary"`             // Income, expenses and balance over the whole ledger
	ExpenseDistribution []ledger.CategoryTotal     `json:"expenseDistribution"` // Expense total per category, largest first
	BudgetPerformance   []ledger.BudgetPerformance `json:"budgetPerformance"`   // Spending figures for every budget
}

type AnalyticsResponse struct {
	Data Analytics `json:"data"` // Derived figures over the ledger
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get analytics
// @Description	Returns the ledger summary, the expense distribution by category and the spending figures of every budget
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	AnalyticsResponse
// @Router			/v1/analytics [get]
func (co Controller) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, AnalyticsResponse{
		Data: Analytics{
			Summary:             co.dashboard.Ledger.Summary(),
			ExpenseDistribution: co.dashboard.Ledger.ExpenseDistribution(),
			BudgetPerformance:   co.dashboard.Ledger.BudgetPerformance(),
		},
	})
}
