package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"

	"studymate-backend/internal/apperr"
)

// FirebaseVerifier verifies Firebase ID tokens issued to the web client.
type FirebaseVerifier struct {
	client *fbauth.Client
}

func NewFirebaseVerifier(ctx context.Context, app *firebase.App) (*FirebaseVerifier, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", &apperr.Error{Kind: apperr.KindUnauthenticated, Message: ErrUnauthorized.Message, Err: err}
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", ErrUnauthorized
	}
	return email, nil
}
