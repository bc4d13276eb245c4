// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the read-only emperor query API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Seed the emperor dataset (embedded or DATA_PATH).
//  4. Connect to Redis when a response cache is configured.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/imperium/internal/api"
	"github.com/taibuivan/imperium/internal/core/emperor"
	"github.com/taibuivan/imperium/internal/platform/config"
	"github.com/taibuivan/imperium/internal/platform/constants"
	"github.com/taibuivan/imperium/internal/platform/middleware"
	redisstore "github.com/taibuivan/imperium/internal/platform/redis"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// ── 3. Dataset ────────────────────────────────────────────────────────
	empire, err := seed(cfg.DataPath)
	must(log, err, "seed emperors")

	log.Info("emperors_seeded",
		slog.Int("count", empire.Len()),
		slog.Int("dynasties", len(empire.Dynasties())),
		slog.String("source", sourceName(cfg.DataPath)),
	)

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	// The store stays a nil interface when caching is off.
	var store middleware.ResponseStore
	health := api.HealthDependencies{Records: empire.Len}

	if cfg.CacheEnabled() {
		startupCtx, startupCancel := context.WithTimeout(rootCtx, 10*time.Second)
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		startupCancel()
		must(log, err, "connect to redis")

		cache := redisstore.NewCache(rdb)
		defer func() {
			log.Info("closing_redis_client")
			if cerr := cache.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()

		store = cache
		health.CheckCache = func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return cache.Ping(ctx)
		}
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(health, log)

	emperorService := emperor.NewService(empire)
	emperorHandler := emperor.NewHandler(emperorService)

	limiter := middleware.NewRateLimiter(constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)
	go limiter.Run(rootCtx)

	server := api.NewServer(cfg, log, limiter, store, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Emperor:   emperorHandler,
	})

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

	stop()

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger tagged with the application name and installs it as default.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// seed loads the dataset from path, or the embedded one when path is empty.
func seed(path string) (*emperor.Empire, error) {
	if path == "" {
		return emperor.NewRomanEmpire()
	}
	return emperor.LoadFile(path)
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
