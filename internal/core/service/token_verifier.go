package service

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobtrack/tracker-api/internal/core/domain"
)

const bearerScheme = "bearer"

// TokenVerifier checks bearer tokens issued by AuthService. It never touches
// the store.
type TokenVerifier struct {
	jwtSecret []byte
	now       func() time.Time
}

func NewTokenVerifier(jwtSecret string) *TokenVerifier {
	return &TokenVerifier{jwtSecret: []byte(jwtSecret), now: time.Now}
}

// Verify parses an Authorization header value and returns the user id it
// asserts. Every failure is reported as domain.ErrUnauthorized.
func (v *TokenVerifier) Verify(rawHeader string) (int64, error) {
	if rawHeader == "" {
		return 0, domain.ErrUnauthorized
	}

	scheme, raw, ok := strings.Cut(rawHeader, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) || raw == "" {
		return 0, domain.ErrUnauthorized
	}

	var claims Claims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !tkn.Valid {
		return 0, domain.ErrUnauthorized
	}
	if claims.UserID <= 0 {
		return 0, domain.ErrUnauthorized
	}

	return claims.UserID, nil
}
