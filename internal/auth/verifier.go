package auth

import (
	"context"
	"strings"

	"studymate-backend/internal/apperr"
)

// Verifier checks a bearer credential and returns the principal's email.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

var (
	ErrTokenNotFound = apperr.Unauthenticated("Unauthorized access. Token not found")
	ErrUnauthorized  = apperr.Unauthenticated("Unauthorized access!")
)

// BearerToken takes the part of an Authorization header after the first
// space. The scheme word itself is not checked.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrTokenNotFound
	}
	_, token, found := strings.Cut(header, " ")
	if !found || token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}
