package v1

import (
	"net/http"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/reset", OptionsSessionReset)
	r.POST("/reset", co.ResetSession)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session/reset [options]
func OptionsSessionReset(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Reset session
// @Description	Discards all session state and restores the demo data
// @Tags			Session
// @Success		204
// @Router			/v1/session/reset [post]
func (co Controller) ResetSession(c *gin.Context) {
	co.dashboard.Reset()
	c.JSON(http.StatusNoContent, nil)
}
