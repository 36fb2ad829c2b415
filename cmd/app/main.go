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

	"github.com/tamilansjob/jobportal/internal/bootstrap"
	"github.com/tamilansjob/jobportal/internal/config"
	"github.com/tamilansjob/jobportal/internal/database"
	"github.com/tamilansjob/jobportal/internal/database/postgres"
	"github.com/tamilansjob/jobportal/internal/handler"
	"github.com/tamilansjob/jobportal/internal/job"
	"github.com/tamilansjob/jobportal/internal/reference"
	"github.com/tamilansjob/jobportal/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title TamilansJob API
// @version 1.0
// @description Government job listing API for Tamil Nadu job seekers.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	handler.InitValidator()

	pool, err := database.NewPool(context.Background(), database.PoolOptions{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	jobService := job.NewService(postgres.NewJobRepository(pool))
	referenceService := reference.NewService(
		postgres.NewReferenceRepository(pool),
		postgres.NewSeedRepository(pool),
	)

	srv := server.NewServer(cfg, pool, jobService, referenceService)

	slog.Info("API docs available",
		"url", cfg.PublicBaseURL+"/swagger/index.html",
		"environment", cfg.Environment)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
