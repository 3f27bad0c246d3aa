package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAuthDisabled = errors.New("auth secret not configured")
	ErrInvalidToken = errors.New("invalid token")
)

type contextKey string

const subjectKey = contextKey("subject")

var (
	mu        sync.RWMutex
	jwtSecret []byte
)

// SetSecret sets the HS256 signing key. An empty secret disables token auth.
func SetSecret(secret string) {
	mu.Lock()
	defer mu.Unlock()
	jwtSecret = []byte(secret)
}

func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return len(jwtSecret) > 0
}

func secret() []byte {
	mu.RLock()
	defer mu.RUnlock()
	return jwtSecret
}

// GenerateToken signs a token for subject that expires after ttl.
func GenerateToken(subject string, ttl time.Duration) (string, error) {
	key := secret()
	if len(key) == 0 {
		return "", ErrAuthDisabled
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseToken verifies tokenStr and returns its subject.
func ParseToken(tokenStr string) (string, error) {
	key := secret()
	if len(key) == 0 {
		return "", ErrAuthDisabled
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims.Subject, nil
}

// TokenFromHeader extracts the bearer token from an Authorization header value.
func TokenFromHeader(authorization string) (string, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return "", fmt.Errorf("%w: missing bearer token", ErrInvalidToken)
	}
	return strings.TrimPrefix(authorization, "Bearer "), nil
}

// WithSubject returns a copy of ctx carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// Subject returns the subject stored by WithSubject, or "".
func Subject(ctx context.Context) string {
	if val, ok := ctx.Value(subjectKey).(string); ok {
		return val
	}
	return ""
}
