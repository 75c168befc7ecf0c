// Package v1 implements the first version of the CoinCraft API.
package v1

import (
	"net/http"

	"github.com/coincraft/backend/internal/dashboard"
	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Controller exposes the dashboard state over HTTP. All handlers are
// methods so that tests can run against their own isolated instance.
type Controller struct {
	dashboard *dashboard.Dashboard
}

func NewController(d *dashboard.Dashboard) Controller {
	return Controller{dashboard: d}
}

// RegisterRoutes attaches all v1 routes to the router group passed in.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRoot)
		r.GET("", GetRoot)
	}

	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterGoalRoutes(r.Group("/goals"))
	co.RegisterHoldingRoutes(r.Group("/holdings"))
	co.RegisterPortfolioRoutes(r.Group("/portfolio"))
	co.RegisterAnalyticsRoutes(r.Group("/analytics"))
	co.RegisterSessionRoutes(r.Group("/session"))
}

type Links struct {
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"` // URL of the transaction endpoints
	Budgets      string `json:"budgets" example:"https://example.com/v1/budgets"`           // URL of the budget endpoints
	Goals        string `json:"goals" example:"https://example.com/v1/goals"`               // URL of the goal endpoints
	Holdings     string `json:"holdings" example:"https://example.com/v1/holdings"`         // URL of the holding endpoints
	Portfolio    string `json:"portfolio" example:"https://example.com/v1/portfolio"`       // URL of the portfolio endpoints
	Analytics    string `json:"analytics" example:"https://example.com/v1/analytics"`       // URL of the analytics endpoint
	Session      string `json:"session" example:"https://example.com/v1/session"`           // URL of the session endpoints
}

type Response struct {
	Links Links `json:"links"` // URLs of API endpoints
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Links: Links{
			Transactions: c.Request.URL.Path + "/transactions",
			Budgets:      c.Request.URL.Path + "/budgets",
			Goals:        c.Request.URL.Path + "/goals",
			Holdings:     c.Request.URL.Path + "/holdings",
			Portfolio:    c.Request.URL.Path + "/portfolio",
			Analytics:    c.Request.URL.Path + "/analytics",
			Session:      c.Request.URL.Path + "/session",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
