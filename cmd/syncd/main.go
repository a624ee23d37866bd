package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/lumeapp/sync-client/internal/client/api"
	"github.com/lumeapp/sync-client/internal/config"
	"github.com/lumeapp/sync-client/internal/infra"
	"github.com/lumeapp/sync-client/internal/pkg/jwt"
	"github.com/lumeapp/sync-client/internal/pkg/sanitize"
	db "github.com/lumeapp/sync-client/internal/repository/sqlite"
	"github.com/lumeapp/sync-client/internal/socket"
	"github.com/lumeapp/sync-client/internal/status"
	"github.com/lumeapp/sync-client/internal/sync/notifications"
	"github.com/lumeapp/sync-client/internal/sync/thread"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	apiClient := api.New(cfg, dbRepo)
	socketRouter := socket.New(cfg, dbRepo)

	sanitizer := sanitize.New()
	inspector := jwt.New()

	selfID := resolveSelfID(dbRepo, inspector, logger)

	threadStore := thread.NewStore(cfg, socketRouter, apiClient, dbRepo, sanitizer, selfID, clock.New())
	threadStore.Start()
	defer threadStore.Stop()

	notificationFeed := notifications.NewFeed(apiClient, sanitizer, dbRepo)
	if err := notificationFeed.Warm(context.Background()); err != nil {
		logger.Error(fmt.Sprintf("failed to warm notification feed: %v", err))
	}

	handler := status.New(threadStore, notificationFeed, socketRouter, dbRepo)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.MetricsHTTP(next, metrics)
	})

	router.Get("/healthz", handler.Healthz)
	router.Get("/state/threads/{id}", handler.GetThreadState)
	router.Get("/state/notifications", handler.GetNotificationState)
	router.Get("/state/preferences/{name}", handler.GetPreference)
	router.Put("/state/preferences/{name}", handler.SetPreference)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Status.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := socketRouter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("socket router error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return refreshLoop(ctx, apiClient, dbRepo, inspector, logger)
	})

	g.Go(func() error {
		syncNotifications(ctx, notificationFeed, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("daemon error: %v", err))
	}
}

func resolveSelfID(repo *db.Repository, inspector *jwt.Inspector, logger *logger_lib.Logger) uuid.UUID {
	access, _, err := repo.Tokens(context.Background())
	if err != nil || access == "" {
		return uuid.Nil
	}

	subject, err := inspector.Subject(access)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read token subject: %v", err))
		return uuid.Nil
	}

	selfID, err := uuid.Parse(subject)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse token subject: %v", err))
		return uuid.Nil
	}

	return selfID
}

// syncNotifications replaces the warm cache with the live feed once the
// backend is reachable. Until then the status endpoint serves the persisted
// snapshot.
func syncNotifications(ctx context.Context, feed *notifications.Feed, logger *logger_lib.Logger) {
	const retryDelay = 30 * time.Second

	for {
		_, loadErr := feed.LoadMore(ctx)
		syncErr := feed.SyncUnread(ctx)
		if loadErr == nil && syncErr == nil {
			return
		}

		if loadErr != nil {
			logger.Error(fmt.Sprintf("failed to sync notifications: %v", loadErr))
		}
		if syncErr != nil {
			logger.Error(fmt.Sprintf("failed to sync unread count: %v", syncErr))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}
}

// refreshLoop rotates the session ahead of token expiry so the socket never
// dials with a stale credential. A failed rotation retries on a short delay
// since the REST layer can still recover lazily on its own.
func refreshLoop(ctx context.Context, apiClient *api.Client, repo *db.Repository, inspector *jwt.Inspector, logger *logger_lib.Logger) error {
	const retryDelay = 30 * time.Second

	for {
		access, _, err := repo.Tokens(ctx)
		if err != nil {
			return fmt.Errorf("failed to load tokens: %v", err)
		}

		delay := retryDelay
		if access != "" {
			deadline, err := inspector.RefreshDeadline(access)
			if err == nil {
				delay = time.Until(deadline)
				if delay < 0 {
					delay = 0
				}
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		if err := apiClient.RefreshSession(ctx); err != nil {
			logger.Error(fmt.Sprintf("failed to refresh session: %v", err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
}
