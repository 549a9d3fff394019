package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthProviderFirebase = "firebase"
	AuthProviderJWT      = "jwt"
)

type Config struct {
	Server    ServerConfig
	Mongo     MongoConfig
	Auth      AuthConfig
	FCM       FCMConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	// EnforceRequestOwnership limits PUT/DELETE /my-requests/:id to requests
	// made by the caller. Off by default.
	EnforceRequestOwnership bool
}

type ServerConfig struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type AuthConfig struct {
	Provider            string
	FirebaseCredentials string
	JWTSecret           string
}

type FCMConfig struct {
	Enabled bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            loadEnv("PORT", "3000"),
			Environment:     loadEnv("APP_ENV", "development"),
			ShutdownTimeout: loadEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Mongo: MongoConfig{
			URI:            loadEnv("MONGO_URI", ""),
			Database:       loadEnv("MONGO_DATABASE", "studyMate"),
			ConnectTimeout: loadEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			Provider:            strings.ToLower(loadEnv("AUTH_PROVIDER", AuthProviderFirebase)),
			FirebaseCredentials: loadEnv("FIREBASE_CREDENTIALS_FILE", "studymateServiceKey.json"),
			JWTSecret:           loadEnv("AUTH_JWT_SECRET", ""),
		},
		FCM: FCMConfig{
			Enabled: loadEnvAsBool("FCM_ENABLED", false),
		},
		RateLimit: RateLimitConfig{
			RPS:   loadEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst: loadEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: loadEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		EnforceRequestOwnership: loadEnvAsBool("ENFORCE_REQUEST_OWNERSHIP", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return errors.New("MONGO_URI is required")
	}
	switch c.Auth.Provider {
	case AuthProviderFirebase:
	case AuthProviderJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("AUTH_JWT_SECRET is required when AUTH_PROVIDER=jwt")
		}
	default:
		return errors.New("AUTH_PROVIDER must be firebase or jwt")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func loadEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func loadEnvAsInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func loadEnvAsFloat(key string, defaultVal float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func loadEnvAsBool(key string, defaultVal bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}

// loadEnvAsDuration accepts Go durations ("15s") or plain seconds ("15").
func loadEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}

func loadEnvAsList(key string, defaultVal []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
