package handler

import (
	"github.com/jobtrack/tracker-api/internal/core/domain"
	"github.com/jobtrack/tracker-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createJobRequest, userID int64) ports.CreateJobInput {
	return ports.CreateJobInput{
		UserID:      userID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Status:      req.Status,
	}
}

func toPatch(req updateJobRequest) ports.JobPatch {
	return ports.JobPatch{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Status:      req.Status,
	}
}

// --- Service result → HTTP response ---

func toJobResponse(j *domain.JobApplication) jobResponse {
	return jobResponse{
		ID:          j.ID,
		CompanyName: j.CompanyName,
		JobTitle:    j.JobTitle,
		Status:      string(j.Status),
		UserID:      j.UserID,
		CreatedAt:   j.CreatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListJobsResult) listJobsResponse {
	items := make([]jobResponse, len(r.Items))
	for i, j := range r.Items {
		items[i] = toJobResponse(j)
	}
	return listJobsResponse{
		Page:       r.Page,
		Limit:      r.Limit,
		Total:      r.Total,
		TotalPages: r.TotalPages,
		Data:       items,
	}
}
