package v1

import (
	"errors"
	"net/http"

	"github.com/coincraft/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for a store error
func status(err error) int {
	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Query errors
var (
	errSortFieldInvalid     = errors.New("the specified sort field is invalid")
	errSortDirectionInvalid = errors.New("the specified sort direction is invalid")
	errPageSizeInvalid      = errors.New("the page size must be one of 5, 10, 25, 50")
)
