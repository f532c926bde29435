package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobtrack/tracker-api/internal/core/domain"
	"github.com/jobtrack/tracker-api/internal/core/ports"
)

// MaxPageLimit caps the number of records returned by a single List call.
const MaxPageLimit = 100

type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger, now: time.Now}
}

// Create validates the input and persists a new application owned by input.UserID.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.JobApplication, error) {
	if isBlank(input.CompanyName) || isBlank(input.JobTitle) || input.Status == "" {
		return nil, domain.NewValidationError("companyName, jobTitle, and status are required")
	}
	status, err := domain.ParseJobStatus(input.Status)
	if err != nil {
		return nil, err
	}

	job, err := s.repo.Create(ctx, &domain.JobApplication{
		CompanyName: input.CompanyName,
		JobTitle:    input.JobTitle,
		Status:      status,
		UserID:      input.UserID,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create job")
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.Info().Int64("job_id", job.ID).Int64("user_id", job.UserID).Msg("job created")
	return job, nil
}

// List returns one page of the caller's applications, newest first.
func (s *JobService) List(ctx context.Context, input ports.ListJobsInput) (*ports.ListJobsResult, error) {
	if input.Page < 1 {
		return nil, domain.NewValidationError("page must be a positive integer")
	}
	if input.Limit < 1 {
		return nil, domain.NewValidationError("limit must be a positive integer")
	}
	limit := min(input.Limit, MaxPageLimit)

	// Pages past the addressable range are empty; saturate instead of overflowing.
	offset := math.MaxInt
	if input.Page-1 <= math.MaxInt/limit {
		offset = (input.Page - 1) * limit
	}

	filter := ports.ListJobsFilter{
		UserID:      input.UserID,
		CompanyName: input.CompanyName,
		JobTitle:    input.JobTitle,
		Offset:      offset,
		Limit:       limit,
	}
	if input.Status != "" {
		status, err := domain.ParseJobStatus(input.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	return &ports.ListJobsResult{
		Items:      items,
		Page:       input.Page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Get returns the job when userID owns it.
func (s *JobService) Get(ctx context.Context, userID, jobID int64) (*domain.JobApplication, error) {
	return s.owned(ctx, userID, jobID)
}

// Update applies the supplied fields of patch. At least one field is required.
// Existence and ownership are checked before the patch itself.
func (s *JobService) Update(ctx context.Context, userID, jobID int64, patch ports.JobPatch) (*domain.JobApplication, error) {
	if _, err := s.owned(ctx, userID, jobID); err != nil {
		return nil, err
	}
	changes, err := toChanges(patch)
	if err != nil {
		return nil, err
	}

	job, err := s.repo.Update(ctx, jobID, userID, changes)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update job: %w", err)
	}

	s.logger.Info().Int64("job_id", jobID).Int64("user_id", userID).Msg("job updated")
	return job, nil
}

// Delete removes the job permanently.
func (s *JobService) Delete(ctx context.Context, userID, jobID int64) error {
	if _, err := s.owned(ctx, userID, jobID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, jobID, userID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("delete job: %w", err)
	}

	s.logger.Info().Int64("job_id", jobID).Int64("user_id", userID).Msg("job deleted")
	return nil
}

// owned loads the job and enforces the ownership check.
func (s *JobService) owned(ctx context.Context, userID, jobID int64) (*domain.JobApplication, error) {
	if jobID < 1 {
		return nil, domain.NewValidationError("invalid job id")
	}

	job, err := s.repo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	if !job.OwnedBy(userID) {
		s.logger.Warn().Int64("job_id", jobID).Int64("user_id", userID).Msg("job access denied")
		return nil, domain.ErrForbidden
	}
	return job, nil
}

func toChanges(patch ports.JobPatch) (ports.JobChanges, error) {
	var changes ports.JobChanges
	if patch.CompanyName == nil && patch.JobTitle == nil && patch.Status == nil {
		return changes, domain.NewValidationError("nothing to update")
	}

	if patch.CompanyName != nil {
		if isBlank(*patch.CompanyName) {
			return changes, domain.NewValidationError("companyName cannot be empty")
		}
		changes.CompanyName = patch.CompanyName
	}
	if patch.JobTitle != nil {
		if isBlank(*patch.JobTitle) {
			return changes, domain.NewValidationError("jobTitle cannot be empty")
		}
		changes.JobTitle = patch.JobTitle
	}
	if patch.Status != nil {
		status, err := domain.ParseJobStatus(*patch.Status)
		if err != nil {
			return changes, err
		}
		changes.Status = &status
	}
	return changes, nil
}

func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
