// Package app wires configuration, storage, services, and transport
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/osanchez/ideahub-backend/internal/adapter/postgres"
	followrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/follow"
	idearepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/idea"
	notificationrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/notification"
	tokenrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/token"
	userrepo "github.com/osanchez/ideahub-backend/internal/adapter/postgres/user"
	"github.com/osanchez/ideahub-backend/internal/auth"
	"github.com/osanchez/ideahub-backend/internal/config"
	authservice "github.com/osanchez/ideahub-backend/internal/service/auth"
	followservice "github.com/osanchez/ideahub-backend/internal/service/follow"
	ideaservice "github.com/osanchez/ideahub-backend/internal/service/idea"
	notificationservice "github.com/osanchez/ideahub-backend/internal/service/notification"
	userservice "github.com/osanchez/ideahub-backend/internal/service/user"
	"github.com/osanchez/ideahub-backend/internal/transport/middleware"
	"github.com/osanchez/ideahub-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is canceled,
// then shuts the server down gracefully.
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
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	follows := followrepo.New(pool)
	ideas := idearepo.New(pool)
	notifications := notificationrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authservice.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	userSvc := userservice.NewService(logger, users)
	followSvc := followservice.NewService(logger, follows, users)
	notificationSvc := notificationservice.NewService(logger, notifications, follows)
	ideaSvc := ideaservice.NewService(logger, ideas, follows, users, notificationSvc, txManager, cfg.Ideas)

	router := rest.NewRouter(rest.Handlers{
		Auth:         rest.NewAuthHandler(authSvc, logger),
		User:         rest.NewUserHandler(userSvc, logger),
		Idea:         rest.NewIdeaHandler(ideaSvc, logger),
		Follow:       rest.NewFollowHandler(followSvc, logger),
		Notification: rest.NewNotificationHandler(notificationSvc, logger),
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	mws = append(mws, middleware.Auth(authSvc))

	handler := middleware.Chain(mws...)(router)

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

	go cleanupExpiredTokens(ctx, logger, authSvc)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// cleanupExpiredTokens periodically deletes expired refresh tokens so the
// table does not grow without bound.
func cleanupExpiredTokens(ctx context.Context, logger *slog.Logger, svc *authservice.Service) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := svc.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.Error("cleanup expired tokens", slog.String("error", err.Error()))
				continue
			}
			if deleted > 0 {
				logger.Info("cleaned up expired tokens", slog.Int64("deleted", deleted))
			}
		}
	}
}
