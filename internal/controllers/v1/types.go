package v1

import (
	cc_uuid "github.com/coincraft/backend/internal/uuid"
)

type URIID struct {
	ID cc_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count      int `json:"count" example:"10"`     // Number of resources in this page
	Total      int `json:"total" example:"42"`     // Number of resources matching the filter
	Page       int `json:"page" example:"1"`       // The returned page, starting at 1
	PageSize   int `json:"pageSize" example:"10"`  // Resources per page
	TotalPages int `json:"totalPages" example:"5"` // Number of pages for the filter
}
