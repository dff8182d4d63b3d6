// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the mangaread HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Load the manga catalogue from the data directory.
//  4. Open the reading-progress backend (memory, sqlite, postgres or redis).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/mangaread/data/migrations"
	"github.com/taibuivan/mangaread/internal/api"
	"github.com/taibuivan/mangaread/internal/core/catalog"
	"github.com/taibuivan/mangaread/internal/core/progress"
	"github.com/taibuivan/mangaread/internal/platform/config"
	"github.com/taibuivan/mangaread/internal/platform/constants"
	"github.com/taibuivan/mangaread/internal/platform/migration"
	pgstore "github.com/taibuivan/mangaread/internal/platform/postgres"
	redisstore "github.com/taibuivan/mangaread/internal/platform/redis"
	"github.com/taibuivan/mangaread/internal/platform/sqlite"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("progress_backend", cfg.ProgressBackend),
	)

	// Root context for the process; cancelled on shutdown.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, constants.StartupTimeout)
	defer startupCancel()

	// ── 3. Catalogue ──────────────────────────────────────────────────────
	// A missing or empty data directory is logged by the repository and
	// reported through /ready; the API keeps serving an empty catalogue.
	dataDir := catalog.ResolveDataDir(cfg.CatalogDirCandidates())
	catalogRepository := catalog.NewFileRepository(os.DirFS(dataDir), dataDir, cfg.CatalogLoadWorkers, log)
	catalogService := catalog.NewService(catalogRepository, log)
	if err := catalogService.Load(startupCtx); err != nil {
		log.Error("catalog_unavailable", slog.String("data_dir", dataDir), slog.Any("error", err))
	}

	// ── 4. Reading progress backend ───────────────────────────────────────
	progressRepository, closeBackend := openProgressBackend(startupCtx, cfg, log)
	defer func() {
		if err := closeBackend(); err != nil {
			log.Error("progress_backend_close_failed", slog.Any("error", err))
		}
	}()
	progressService := progress.NewService(progressRepository, log)

	// ── 5. HTTP wiring ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Health: api.NewHealthHandler(log,
			api.Check{Name: "catalog", Run: catalogService.Ready},
			api.Check{Name: cfg.ProgressBackend, Run: progressService.Ready},
		),
		Sitemap:  api.NewSitemapHandler(catalogService, cfg.PublicBaseURL),
		Catalog:  catalog.NewHandler(catalogService),
		Progress: progress.NewHandler(progressService),
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 6. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger with the app attribute on every record.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// openProgressBackend connects the configured progress store. The returned
// function releases its connections.
func openProgressBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (progress.Repository, func() error) {
	noop := func() error { return nil }

	switch cfg.ProgressBackend {
	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath, log)
		must(log, err, "open sqlite")

		repository, err := progress.NewSQLiteRepository(ctx, db)
		must(log, err, "prepare sqlite progress table")
		return repository, db.Close

	case config.BackendPostgres:
		must(log, migration.RunUp(ctx, cfg.DatabaseURL, migrationSource(cfg), log), "run migrations")

		pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		return progress.NewPostgresRepository(pool), func() error {
			log.Info("closing_postgres_pool")
			pool.Close()
			return nil
		}

	case config.BackendRedis:
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		return progress.NewRedisRepository(rdb, cfg.RedisProgressKey), rdb.Close
	}

	log.Warn("progress_backend_not_durable", slog.String("backend", config.BackendMemory))
	return progress.NewMemoryRepository(), noop
}

// migrationSource prefers MIGRATION_PATH over the files built into the binary.
func migrationSource(cfg *config.Config) fs.FS {
	if cfg.MigrationPath != "" {
		return os.DirFS(cfg.MigrationPath)
	}
	return migrations.FS
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
