package ports

import (
	"context"

	"github.com/jobtrack/tracker-api/internal/core/domain"
)

// ListJobsFilter carries the already-validated query for listing jobs.
// UserID is always set by the service layer.
type ListJobsFilter struct {
	UserID      int64
	Status      domain.JobStatus // empty = any status
	CompanyName string           // optional: case-insensitive substring
	JobTitle    string           // optional: case-insensitive substring
	Offset      int
	Limit       int
}

// JobChanges holds the columns to overwrite; nil fields are left untouched.
type JobChanges struct {
	CompanyName *string
	JobTitle    *string
	Status      *domain.JobStatus
}

// JobRepository defines persistence operations for job applications.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobApplication) (*domain.JobApplication, error)
	// FindByID returns domain.ErrJobNotFound when the row does not exist.
	FindByID(ctx context.Context, id int64) (*domain.JobApplication, error)
	// List returns a page of jobs newest first and the total match count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.JobApplication, int64, error)
	// Update and Delete only touch the row when it is owned by userID and
	// return domain.ErrJobNotFound otherwise.
	Update(ctx context.Context, id, userID int64, changes JobChanges) (*domain.JobApplication, error)
	Delete(ctx context.Context, id, userID int64) error
}
