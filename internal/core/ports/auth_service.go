package ports

import (
	"context"

	"github.com/jobtrack/tracker-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenVerifier resolves a raw Authorization header into the caller's user id.
type TokenVerifier interface {
	Verify(rawHeader string) (int64, error)
}
