package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrack/tracker-api/internal/core/domain"
	"github.com/jobtrack/tracker-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// Claims is the JWT payload issued on login. The user id is the only
// application claim.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// dummyHash is compared against when the email is unknown so that both
// login failures cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return h
})

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	limiter   ports.AttemptLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewAuthService wires the service. A nil limiter disables attempt limiting.
func NewAuthService(repo ports.AuthRepository, limiter ports.AttemptLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	if limiter == nil {
		limiter = noopLimiter{}
	}
	return &AuthService{
		repo:      repo,
		limiter:   limiter,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed token. Unknown emails
// and wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.NewValidationError("email and password are required")
	}

	blocked, err := s.limiter.Blocked(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login limiter check failed, continuing")
	} else if blocked {
		return "", domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return "", fmt.Errorf("login: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to reset login attempts")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login attempt")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

type noopLimiter struct{}

func (noopLimiter) Blocked(context.Context, string) (bool, error) { return false, nil }
func (noopLimiter) RecordFailure(context.Context, string) error   { return nil }
func (noopLimiter) Reset(context.Context, string) error           { return nil }
