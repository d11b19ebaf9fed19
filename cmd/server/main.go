package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"labsync/internal/app/server/api"
	healthAPI "labsync/internal/app/server/api/http/health"
	"labsync/internal/app/server/config"
	"labsync/internal/domain/sample"
	"labsync/internal/infrastructure/storage/memory"
	"labsync/internal/infrastructure/storage/postgres"
	"labsync/internal/ml/anomaly"
	"labsync/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	log.Info("starting labsync server", "env", cfg.Env, "address", cfg.Server.RunAddress)

	var (
		repo   sample.Repository
		pinger healthAPI.Pinger
	)
	if cfg.DB.InMemory {
		log.Warn("running on the in-memory store; data is lost on shutdown")
		repo = memory.NewRepository()
	} else {
		storage, err := postgres.New(cfg)
		if err != nil {
			return err
		}
		defer storage.Close()
		repo = postgres.NewSampleRepository(storage.Pool(), log)
		pinger = storage
	}

	detector := anomaly.LoadDetector(cfg.Model.Path, log)

	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(repo, pinger, detector, cfg, log),
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Info("server listening", "address", cfg.Server.RunAddress)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
