// Package healthz implements the application health endpoint.
package healthz

import (
	"net/http"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health. All state is in process memory, so a responding process is a healthy one.
// @Tags			General
// @Success		204
// @Router			/healthz [get]
func Get(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
