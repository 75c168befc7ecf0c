package httputil_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coincraft/backend/internal/httputil"
	"github.com/coincraft/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBindData(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(_ *gin.Context) {
		var o struct {
			Name string `json:"name"`
		}

		assert.Nil(t, httputil.BindData(c, &o))
		assert.Equal(t, "Drink more water!", o.Name)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{ "name": "Drink more water!" }`))
	r.ServeHTTP(w, c.Request)
}

func TestBindBrokenData(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(_ *gin.Context) {
		var o struct {
			Name string `json:"name"`
		}

		assert.ErrorIs(t, httputil.BindData(c, &o), httputil.ErrInvalidBody)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{ broken json: "Drink more water!" }`))
	r.ServeHTTP(w, c.Request)
}

func TestBindEmptyBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.POST("/", func(_ *gin.Context) {
		var o struct {
			Name string `json:"name"`
		}

		assert.ErrorIs(t, httputil.BindData(c, &o), httputil.ErrRequestBodyEmpty)
	})

	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewBufferString(""))
	r.ServeHTTP(w, c.Request)
}

func TestBindURI(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
	}{
		{"valid UUID", "d19a622f-2d71-4bfb-8b2d-2b0b3b4e7e2c", nil},
		{"invalid UUID", "d19a622f-broken", httputil.ErrInvalidUUID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.GET("/:id", func(c *gin.Context) {
				var uri struct {
					ID uuid.UUID `uri:"id" binding:"required"`
				}

				assert.ErrorIs(t, httputil.BindURI(c, &uri), tt.err)
			})

			c.Request, _ = http.NewRequest(http.MethodGet, "/"+tt.id, nil)
			r.ServeHTTP(w, c.Request)
		})
	}
}

func TestOptionsHeaders(t *testing.T) {
	tests := []struct {
		handler gin.HandlerFunc
		allow   string
	}{
		{httputil.OptionsGet, "OPTIONS, GET"},
		{httputil.OptionsPost, "OPTIONS, POST"},
		{httputil.OptionsGetPost, "OPTIONS, GET, POST"},
		{httputil.OptionsDelete, "OPTIONS, DELETE"},
		{httputil.OptionsPatchDelete, "OPTIONS, PATCH, DELETE"},
		{httputil.OptionsGetPatchDelete, "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.allow, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)

			r.OPTIONS("/", tt.handler)

			c.Request, _ = http.NewRequest(http.MethodOptions, "/", nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("allow"))
		})
	}
}
