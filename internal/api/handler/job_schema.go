package handler

import "time"

type createJobRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	JobTitle    string `json:"jobTitle"    validate:"required"`
	Status      string `json:"status"      validate:"required,jobstatus"`
}

// updateJobRequest uses pointers so an omitted field can be told apart from
// an empty one.
type updateJobRequest struct {
	CompanyName *string `json:"companyName"`
	JobTitle    *string `json:"jobTitle"`
	Status      *string `json:"status"`
}

// Response-only types owned by the transport layer.

type jobResponse struct {
	ID          int64     `json:"id"`
	CompanyName string    `json:"companyName"`
	JobTitle    string    `json:"jobTitle"`
	Status      string    `json:"status"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type listJobsResponse struct {
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
	Data       []jobResponse `json:"data"`
}
