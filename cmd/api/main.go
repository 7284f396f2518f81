package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"realtime-taskboard/config"
	_ "realtime-taskboard/docs" // Swagger docs
	"realtime-taskboard/internal/httpserver"
	"realtime-taskboard/internal/middleware"
	syncListener "realtime-taskboard/internal/sync"
	"realtime-taskboard/internal/task/repository/postgrest"
	"realtime-taskboard/internal/task/usecase"
	"realtime-taskboard/pkg/gotrue"
	"realtime-taskboard/pkg/log"
	"realtime-taskboard/pkg/realtime"
	"realtime-taskboard/pkg/storage"
)

// @title       Realtime Task Board API
// @description Task board backed by a hosted table, storage bucket and change feed.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Realtime Task Board...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Session bootstrap: best effort, fire and forget. On failure every
	// remote call proceeds with the public API key only.
	bearer := cfg.Backend.APIKey
	identity := gotrue.NewClient(cfg.Auth.URL, cfg.Backend.APIKey)
	if session, authErr := identity.SignInAnonymously(ctx); authErr != nil {
		logger.Warnf(ctx, "Anonymous sign-in failed, continuing unauthenticated: %v", authErr)
	} else {
		bearer = session.AccessToken
		logger.Info(ctx, "Anonymous session established")
	}

	// 4. Attachment store
	objects, err := storage.NewClient(ctx, storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		URLCacheTTL:   cfg.Storage.URLCacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize attachment store: ", err)
		return
	}

	// 5. Task collection
	tableClient := postgrest.NewClient(cfg.Backend.URL, cfg.Backend.APIKey, bearer)
	taskRepo := postgrest.New(tableClient, cfg.Backend.Table, logger)
	taskUC := usecase.New(logger, taskRepo, objects)

	// Initial pull. A failure here is not fatal: the view starts empty and
	// the next refresh repairs it.
	if _, err := taskUC.Refresh(ctx); err != nil {
		logger.Warnf(ctx, "Initial refresh failed, starting with empty view: %v", err)
	}

	// 6. Change feed
	if cfg.Realtime.Enabled && cfg.Realtime.URL != "" {
		feed := realtime.NewClient(cfg.Realtime.URL, cfg.Backend.APIKey)
		listener := syncListener.New(feed, cfg.Backend.Table, taskUC, logger)
		if subErr := listener.Subscribe(ctx); subErr != nil {
			logger.Warnf(ctx, "Change feed unavailable, relying on self-triggered refresh: %v", subErr)
		} else {
			go listener.Run(ctx)
		}
	} else {
		logger.Warn(ctx, "Change feed disabled, relying on self-triggered refresh")
	}

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskUC:      taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
