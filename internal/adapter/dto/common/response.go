package common

import "time"

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Limit int `json:"limit"`
	Count int `json:"count"`
}

// ListResponse represents a list response
type ListResponse struct {
	Data       interface{}         `json:"data"`
	Pagination *PaginationResponse `json:"pagination,omitempty"`
}

// HealthResponse reports the status of the service and its dependencies
type HealthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Time        time.Time         `json:"time"`
	Components  map[string]string `json:"components,omitempty"`
}
