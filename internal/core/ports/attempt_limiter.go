package ports

import "context"

// AttemptLimiter tracks failed logins per email.
type AttemptLimiter interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
