package v1

import (
	"net/http"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterHoldingRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsHoldings)
		r.GET("", co.GetHoldings)
		r.POST("", co.CreateHolding)
	}
	{
		r.OPTIONS("/:id", OptionsHoldingDetail)
		r.GET("/:id", co.GetHolding)
		r.PATCH("/:id", co.UpdateHolding)
		r.DELETE("/:id", co.DeleteHolding)
	}
	{
		r.OPTIONS("/:id/stats", OptionsHoldingStats)
		r.GET("/:id/stats", co.GetHoldingStats)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holdings
// @Success		204
// @Router			/v1/holdings [options]
func OptionsHoldings(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holdings
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holdings/{id} [options]
func OptionsHoldingDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holdings
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holdings/{id}/stats [options]
func OptionsHoldingStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create holding
// @Description	Creates a new investment position. The current price starts near the purchase price and the price history is backfilled.
// @Tags			Holdings
// @Accept			json
// @Produce		json
// @Success		201		{object}	HoldingResponse
// @Failure		400		{object}	HoldingResponse
// @Param			holding	body		HoldingEditable	true	"Holding"
// @Router			/v1/holdings [post]
func (co Controller) CreateHolding(c *gin.Context) {
	var editable HoldingEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	holding, err := co.dashboard.Portfolio.Add(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	apiResource := newHolding(holding)
	c.JSON(http.StatusCreated, HoldingResponse{Data: &apiResource})
}

// @Summary		Get holdings
// @Description	Returns all investment positions with their current valuation
// @Tags			Holdings
// @Produce		json
// @Success		200	{object}	HoldingListResponse
// @Router			/v1/holdings [get]
func (co Controller) GetHoldings(c *gin.Context) {
	holdings := co.dashboard.Portfolio.List()

	data := make([]Holding, 0, len(holdings))
	for _, holding := range holdings {
		data = append(data, newHolding(holding))
	}

	c.JSON(http.StatusOK, HoldingListResponse{Data: data})
}

// @Summary		Get holding
// @Description	Returns a specific investment position
// @Tags			Holdings
// @Produce		json
// @Success		200	{object}	HoldingResponse
// @Failure		400	{object}	HoldingResponse
// @Failure		404	{object}	HoldingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holdings/{id} [get]
func (co Controller) GetHolding(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	holding, err := co.dashboard.Portfolio.Get(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	apiResource := newHolding(holding)
	c.JSON(http.StatusOK, HoldingResponse{Data: &apiResource})
}

// @Summary		Get holding statistics
// @Description	Returns summary statistics and a moving average over the recorded price history of the holding
// @Tags			Holdings
// @Produce		json
// @Success		200	{object}	HoldingStatsResponse
// @Failure		400	{object}	HoldingStatsResponse
// @Failure		404	{object}	HoldingStatsResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holdings/{id}/stats [get]
func (co Controller) GetHoldingStats(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingStatsResponse{Error: &e})
		return
	}

	stats, err := co.dashboard.Portfolio.HistoryStats(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingStatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, HoldingStatsResponse{Data: &stats})
}

// @Summary		Update holding
// @Description	Updates an existing position. All editable values must be specified. The current price is re-derived from the new purchase price.
// @Tags			Holdings
// @Accept			json
// @Produce		json
// @Success		200		{object}	HoldingResponse
// @Failure		400		{object}	HoldingResponse
// @Failure		404		{object}	HoldingResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			holding	body		HoldingEditable	true	"Holding"
// @Router			/v1/holdings/{id} [patch]
func (co Controller) UpdateHolding(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	var editable HoldingEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	holding, err := co.dashboard.Portfolio.Update(uri.ID.UUID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HoldingResponse{Error: &e})
		return
	}

	apiResource := newHolding(holding)
	c.JSON(http.StatusOK, HoldingResponse{Data: &apiResource})
}

// @Summary		Delete holding
// @Description	Deletes a position. Deleting an unknown ID is a no-op.
// @Tags			Holdings
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holdings/{id} [delete]
func (co Controller) DeleteHolding(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.dashboard.Portfolio.Delete(uri.ID.UUID)
	c.JSON(http.StatusNoContent, nil)
}
