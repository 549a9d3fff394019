package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"studymate-backend/internal/apperr"
)

// JWTVerifier accepts HS256 tokens carrying an "email" claim. It stands in for
// Firebase in local development.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt verifier: empty secret")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", &apperr.Error{Kind: apperr.KindUnauthenticated, Message: ErrUnauthorized.Message, Err: err}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrUnauthorized
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrUnauthorized
	}
	return email, nil
}
