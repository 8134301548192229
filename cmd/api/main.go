// Copyright (c) 2026 OWH Studio. All rights reserved.

// Command api is the entry point for the OWH content API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when configured, else run the cache in-process.
//  5. Construct the content source clients (spreadsheet, CMS).
//  6. Wire domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/owhstudio/owh-api/internal/api"
	"github.com/owhstudio/owh-api/internal/cache"
	"github.com/owhstudio/owh-api/internal/core/contact"
	"github.com/owhstudio/owh-api/internal/core/equipment"
	"github.com/owhstudio/owh-api/internal/core/film"
	"github.com/owhstudio/owh-api/internal/core/production"
	"github.com/owhstudio/owh-api/internal/core/rental"
	"github.com/owhstudio/owh-api/internal/core/series"
	"github.com/owhstudio/owh-api/internal/core/site"
	"github.com/owhstudio/owh-api/internal/platform/config"
	"github.com/owhstudio/owh-api/internal/platform/constants"
	pgstore "github.com/owhstudio/owh-api/internal/platform/postgres"
	redisstore "github.com/owhstudio/owh-api/internal/platform/redis"
	"github.com/owhstudio/owh-api/internal/source/cms"
	"github.com/owhstudio/owh-api/internal/source/sheets"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[OWH] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Cache Store ────────────────────────────────────────────────────
	// Redis shares snapshots between instances; a single instance runs fine
	// on the in-process store.
	var cacheStore cache.Store
	var checkCache func() error

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		cacheStore = cache.NewRedisStore(rdb)
		checkCache = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	} else {
		memoryStore := cache.NewMemoryStore()
		defer memoryStore.Close()
		cacheStore = memoryStore
		log.Info("cache running in-process", slog.String("reason", "REDIS_URL not set"))
	}

	resolver := cache.New(cacheStore, log)

	// ── 5. Content Sources ────────────────────────────────────────────────
	sheetClient := sheets.New(sheets.Config{
		BaseURL: cfg.SheetsBaseURL,
		SheetID: cfg.SheetsID,
		Timeout: cfg.SheetsTimeout,
		Retries: cfg.SheetsRetries,
	}, log)

	cmsClient := cms.New(cms.Config{
		BaseURL: cfg.CMSBaseURL,
		Timeout: cfg.CMSTimeout,
		Retries: cfg.CMSRetries,
	}, log)

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: checkCache,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	catalogPolicy := cache.Policy{Fresh: cfg.CatalogFresh, Lifetime: cfg.CatalogLifetime}
	equipmentPolicy := cache.Policy{Fresh: cfg.EquipmentFresh, Lifetime: cfg.EquipmentLifetime}
	sitePolicies := site.Policies{
		Content:  catalogPolicy,
		Settings: cache.Policy{Fresh: cfg.SiteFresh, Lifetime: cfg.SiteLifetime},
	}

	filmService := film.NewService(sheetClient, cmsClient, resolver, catalogPolicy, log)
	productionService := production.NewService(cmsClient, production.NewPostgresRepository(pool), resolver, catalogPolicy, log)
	equipmentService := equipment.NewService(cmsClient, equipment.NewPostgresRepository(pool), resolver, equipmentPolicy, log)
	seriesService := series.NewService(cmsClient, resolver, catalogPolicy, log)
	siteService := site.NewService(cmsClient, resolver, sitePolicies, log)
	rentalService := rental.NewService(rental.NewPostgresRepository(pool), equipmentService, log)
	contactService := contact.NewService(contact.NewPostgresRepository(pool), log)

	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Film:       film.NewHandler(filmService),
		Production: production.NewHandler(productionService),
		Equipment:  equipment.NewHandler(equipmentService),
		Series:     series.NewHandler(seriesService),
		Site:       site.NewHandler(siteService),
		Rental:     rental.NewHandler(rentalService),
		Contact:    contact.NewHandler(contactService),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
