package v1

import (
	"net/http"
	"time"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
	{
		r.OPTIONS("/:id/amounts", OptionsGoalAmounts)
		r.POST("/:id/amounts", co.AddGoalAmount)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id}/amounts [options]
func OptionsGoalAmounts(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create goal
// @Description	Creates a new savings goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	goal, err := co.dashboard.Goals.Create(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	apiResource := newGoal(goal, time.Now())
	c.JSON(http.StatusCreated, GoalResponse{Data: &apiResource})
}

// @Summary		Get goals
// @Description	Returns all savings goals with their progress figures
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	goals := co.dashboard.Goals.List()
	now := time.Now()

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(goal, now))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	goal, err := co.dashboard.Goals.Get(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	apiResource := newGoal(goal, time.Now())
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Update goal
// @Description	Updates an existing goal. All editable values must be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	var editable GoalEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	goal, err := co.dashboard.Goals.Update(uri.ID.UUID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{Error: &e})
		return
	}

	apiResource := newGoal(goal, time.Now())
	c.JSON(http.StatusOK, GoalResponse{Data: &apiResource})
}

// @Summary		Delete goal
// @Description	Deletes a goal. Deleting an unknown ID is a no-op.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.dashboard.Goals.Delete(uri.ID.UUID)
	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Add amount to goal
// @Description	Adds a positive amount to the goal's saved total. The achieved flag in the response is true exactly when this addition reached the target for the first time.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalAmountResponse
// @Failure		400		{object}	GoalAmountResponse
// @Failure		404		{object}	GoalAmountResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			amount	body		GoalAmountEditable	true	"Amount"
// @Router			/v1/goals/{id}/amounts [post]
func (co Controller) AddGoalAmount(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalAmountResponse{Error: &e})
		return
	}

	var editable GoalAmountEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalAmountResponse{Error: &e})
		return
	}

	result, err := co.dashboard.Goals.AddAmount(uri.ID.UUID, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalAmountResponse{Error: &e})
		return
	}

	apiResource := newGoal(result.Goal, time.Now())
	c.JSON(http.StatusOK, GoalAmountResponse{
		Data:     &apiResource,
		Achieved: result.Achieved,
	})
}
