package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	adminhandler "roster/internal/admin/handler"
	"roster/internal/directory"
	directorymetrics "roster/internal/directory/metrics"
	"roster/internal/directory/snapshot"
	"roster/internal/jwttoken"
	"roster/internal/platform/config"
	"roster/internal/platform/health"
	"roster/internal/platform/httpserver"
	"roster/internal/platform/logger"
	simulationhandler "roster/internal/simulation/handler"
	httptransport "roster/internal/transport/http"
	validationhandler "roster/internal/validation/handler"
	validationmetrics "roster/internal/validation/metrics"
	"roster/internal/validation/service"
	"roster/internal/validation/tracer"
	"roster/pkg/secrets"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing roster",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"snapshot_path", cfg.SnapshotPath,
		"watch_snapshot", cfg.WatchSnapshot,
	)

	basicAuthHash := cfg.BasicAuthHash
	if basicAuthHash == "" {
		hash, err := secrets.Hash(config.BasicAuthPassword())
		if err != nil {
			log.Error("failed to hash basic-auth password", "error", err)
			os.Exit(1)
		}
		basicAuthHash = hash
	}

	source := snapshot.NewFileSource(cfg.SnapshotPath)
	store := directory.NewStore(source,
		directory.WithLogger(log),
		directory.WithMetrics(directorymetrics.New()),
	)

	validationService := service.New(store,
		service.WithLogger(log),
		service.WithMetrics(validationmetrics.New()),
		service.WithTracer(tracer.NewOTel()),
	)

	tokens := jwttoken.NewService(cfg.AdminSigningKey, "roster", "roster-admin", cfg.AdminTokenTTL)

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("directory", func() error {
		// An empty or missing snapshot is a supported state, so readiness
		// only verifies the store can answer.
		_, _, err := store.Lookup(context.Background(), "readiness-probe@localhost")
		return err
	})

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Health:         healthHandler,
		Validation:     validationhandler.New(validationService, log),
		Simulation:     simulationhandler.New(log, cfg.SimulateMaxDelay),
		Admin:          adminhandler.New(store, log),
		BasicAuthUser:  cfg.BasicAuthUser,
		BasicAuthHash:  basicAuthHash,
		TokenValidator: tokens,
	})

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if cfg.WatchSnapshot {
		watcher := directory.NewWatcher(store, source.Path(), log)
		go func() {
			if err := watcher.Run(watchCtx); err != nil {
				log.Warn("snapshot watcher unavailable, falling back to per-lookup version checks", "error", err)
			}
		}()
	}

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")
	stopWatch()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
