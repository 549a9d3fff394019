package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "APP_ENV", "SERVER_SHUTDOWN_TIMEOUT",
	"MONGO_URI", "MONGO_DATABASE", "MONGO_CONNECT_TIMEOUT",
	"AUTH_PROVIDER", "FIREBASE_CREDENTIALS_FILE", "AUTH_JWT_SECRET",
	"FCM_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"CORS_ALLOWED_ORIGINS", "ENFORCE_REQUEST_OWNERSHIP",
}

// clearEnv blanks every key Load reads; blank values fall back to defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "studyMate", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, AuthProviderFirebase, cfg.Auth.Provider)
	assert.Equal(t, "studymateServiceKey.json", cfg.Auth.FirebaseCredentials)
	assert.False(t, cfg.FCM.Enabled)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.EnforceRequestOwnership)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "30")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "2500ms")
	t.Setenv("AUTH_PROVIDER", "JWT")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("FCM_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ENFORCE_REQUEST_OWNERSHIP", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, AuthProviderJWT, cfg.Auth.Provider)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.FCM.Enabled)
	assert.Equal(t, 0.5, cfg.RateLimit.RPS)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.EnforceRequestOwnership)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "mongo uri missing",
			env:     map[string]string{},
			wantErr: "MONGO_URI is required",
		},
		{
			name:    "jwt without secret",
			env:     map[string]string{"MONGO_URI": "mongodb://db", "AUTH_PROVIDER": "jwt"},
			wantErr: "AUTH_JWT_SECRET is required",
		},
		{
			name:    "unknown provider",
			env:     map[string]string{"MONGO_URI": "mongodb://db", "AUTH_PROVIDER": "saml"},
			wantErr: "AUTH_PROVIDER must be firebase or jwt",
		},
		{
			name:    "zero burst",
			env:     map[string]string{"MONGO_URI": "mongodb://db", "RATE_LIMIT_BURST": "0"},
			wantErr: "must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEnvAsDuration_BadValue(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, loadEnvAsDuration("SOME_TIMEOUT", time.Minute))
}
