// Package app assembles configuration, storage, services, and the HTTP
// server into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prepstack/interview-backend/internal/adapter/postgres"
	questionrepo "github.com/prepstack/interview-backend/internal/adapter/postgres/question"
	samplerepo "github.com/prepstack/interview-backend/internal/adapter/postgres/sample"
	sessionrepo "github.com/prepstack/interview-backend/internal/adapter/postgres/session"
	userrepo "github.com/prepstack/interview-backend/internal/adapter/postgres/user"
	"github.com/prepstack/interview-backend/internal/adapter/provider/questiongen"
	authjwt "github.com/prepstack/interview-backend/internal/auth"
	"github.com/prepstack/interview-backend/internal/config"
	authsvc "github.com/prepstack/interview-backend/internal/service/auth"
	"github.com/prepstack/interview-backend/internal/service/progress"
	sessionsvc "github.com/prepstack/interview-backend/internal/service/session"
	"github.com/prepstack/interview-backend/internal/transport/middleware"
	"github.com/prepstack/interview-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// services, and serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	questions := questionrepo.New(pool)
	samples := samplerepo.New(pool)

	jwtManager := authjwt.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var catalogue *progress.Catalogue
	if cfg.Roadmap.CataloguePath != "" {
		catalogue, err = progress.LoadCatalogue(cfg.Roadmap.CataloguePath)
		if err != nil {
			return fmt.Errorf("load role catalogue: %w", err)
		}
	}

	authService := authsvc.NewService(logger, users, jwtManager)
	sessionService := sessionsvc.NewService(logger, sessions, questions, questiongen.NewStub(), txManager)
	progressService, err := progress.NewService(
		logger,
		questions,
		samples,
		sessions,
		txManager,
		cfg.Engine.ScoreWeights(),
		cfg.Engine.ReviewPolicy(),
		cfg.Engine.UnlockThreshold,
		cfg.Engine.ActivityWindow,
		catalogue,
	)
	if err != nil {
		return fmt.Errorf("build progress service: %w", err)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authService, logger),
		Sessions:  rest.NewSessionHandler(sessionService, logger),
		Progress:  rest.NewProgressHandler(progressService, logger),
		AuthLimit: rateLimiter.Limit(cfg.RateLimit.AuthPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
