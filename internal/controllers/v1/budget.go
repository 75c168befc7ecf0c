package v1

import (
	"net/http"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudget)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets with their accumulated spending
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets := co.dashboard.Ledger.Budgets()

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Create budget
// @Description	Creates a new budget. The category must not already have a budget.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.dashboard.Ledger.AddBudget(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	apiResource := newBudget(budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &apiResource})
}

// @Summary		Update budget
// @Description	Updates an existing budget. All editable values must be specified, the spent total is owned by the ledger and kept as-is.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.dashboard.Ledger.UpdateBudget(uri.ID.UUID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	apiResource := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &apiResource})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Deleting an unknown ID is a no-op.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.dashboard.Ledger.DeleteBudget(uri.ID.UUID)
	c.JSON(http.StatusNoContent, nil)
}
