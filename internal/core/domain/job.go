package domain

import (
	"fmt"
	"time"
)

// JobStatus is the stage a job application is in. Values outside the
// constants below are never constructed from input; use ParseJobStatus.
type JobStatus string

const (
	StatusApplied   JobStatus = "Applied"
	StatusInterview JobStatus = "Interview"
	StatusRejected  JobStatus = "Rejected"
	StatusOffer     JobStatus = "Offer"
)

// JobStatuses lists every valid status in display order.
var JobStatuses = []JobStatus{StatusApplied, StatusInterview, StatusRejected, StatusOffer}

// Valid reports whether s is one of the known statuses.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusRejected, StatusOffer:
		return true
	}
	return false
}

// ParseJobStatus converts raw input into a JobStatus. Matching is exact.
func ParseJobStatus(raw string) (JobStatus, error) {
	s := JobStatus(raw)
	if !s.Valid() {
		return "", NewValidationError(fmt.Sprintf("invalid status value %q", raw))
	}
	return s, nil
}

// JobApplication is a single application owned by exactly one user.
type JobApplication struct {
	ID          int64     `db:"id"`
	CompanyName string    `db:"company_name"`
	JobTitle    string    `db:"job_title"`
	Status      JobStatus `db:"status"`
	UserID      int64     `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// OwnedBy reports whether userID owns the application.
func (j *JobApplication) OwnedBy(userID int64) bool {
	return j.UserID == userID
}
