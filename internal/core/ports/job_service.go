package ports

import (
	"context"

	"github.com/jobtrack/tracker-api/internal/core/domain"
)

// CreateJobInput carries raw client input for a new job application.
type CreateJobInput struct {
	UserID      int64
	CompanyName string
	JobTitle    string
	Status      string
}

// ListJobsInput carries all parameters for the list endpoint.
type ListJobsInput struct {
	UserID      int64
	Page        int
	Limit       int
	Status      string
	CompanyName string
	JobTitle    string
}

// JobPatch is a partial update. A nil field was not supplied by the client.
type JobPatch struct {
	CompanyName *string
	JobTitle    *string
	Status      *string
}

// ListJobsResult is returned by List.
type ListJobsResult struct {
	Items      []*domain.JobApplication
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// JobService defines use-case operations for job applications.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.JobApplication, error)
	List(ctx context.Context, input ListJobsInput) (*ListJobsResult, error)
	Get(ctx context.Context, userID, jobID int64) (*domain.JobApplication, error)
	Update(ctx context.Context, userID, jobID int64, patch JobPatch) (*domain.JobApplication, error)
	Delete(ctx context.Context, userID, jobID int64) error
}
