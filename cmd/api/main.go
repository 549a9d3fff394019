package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"studymate-backend/internal/auth"
	"studymate-backend/internal/config"
	"studymate-backend/internal/handlers"
	"studymate-backend/internal/middleware"
	"studymate-backend/internal/notify"
	"studymate-backend/internal/repository"
	"studymate-backend/internal/routes"

	firebase "firebase.google.com/go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load env + config
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect DB
	client, err := config.ConnectDB(ctx, cfg.Mongo)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect", zap.Error(err))
		}
	}()
	logger.Info("MongoDB connected", zap.String("database", cfg.Mongo.Database))

	// 3. Identity provider + notifications
	verifier, notifier, err := buildIdentity(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("identity setup failed", zap.Error(err))
	}

	// 4. Router
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	defer limiter.Stop()

	h := handlers.New(
		repository.New(client.Database(cfg.Mongo.Database)),
		notifier,
		logger,
		cfg.EnforceRequestOwnership,
	)
	r := routes.NewRouter(h, middleware.AuthMiddleware(verifier),
		middleware.RequestLogger(logger),
		middleware.CORSMiddleware(cfg.CORS.AllowedOrigins),
		middleware.RateLimitMiddleware(limiter),
	)

	// 5. Run until signal
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}
	go func() {
		logger.Info("Server is listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// buildIdentity picks the token verifier and, when enabled, the FCM notifier.
// Firebase is only initialised when something needs it.
func buildIdentity(ctx context.Context, cfg *config.Config, logger *zap.Logger) (auth.Verifier, notify.Notifier, error) {
	var app *firebase.App
	firebaseApp := func() (*firebase.App, error) {
		if app != nil {
			return app, nil
		}
		a, err := config.InitFirebase(ctx, cfg.Auth.FirebaseCredentials)
		if err != nil {
			return nil, err
		}
		app = a
		return app, nil
	}

	var verifier auth.Verifier
	switch cfg.Auth.Provider {
	case config.AuthProviderJWT:
		v, err := auth.NewJWTVerifier(cfg.Auth.JWTSecret)
		if err != nil {
			return nil, nil, err
		}
		logger.Warn("using shared-secret JWT verifier; do not use in production")
		verifier = v
	default:
		a, err := firebaseApp()
		if err != nil {
			return nil, nil, err
		}
		v, err := auth.NewFirebaseVerifier(ctx, a)
		if err != nil {
			return nil, nil, err
		}
		verifier = v
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.FCM.Enabled {
		a, err := firebaseApp()
		if err != nil {
			return nil, nil, err
		}
		n, err := notify.NewFCMNotifier(ctx, a, logger)
		if err != nil {
			return nil, nil, err
		}
		notifier = n
		logger.Info("Firebase Cloud Messaging ready")
	}

	return verifier, notifier, nil
}
