package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dharshana-KM/student-spark/backend/internal/router"
	"github.com/Dharshana-KM/student-spark/backend/internal/scheduler"
	"github.com/Dharshana-KM/student-spark/backend/internal/setup"
	"github.com/Dharshana-KM/student-spark/shared/config"
	"github.com/Dharshana-KM/student-spark/shared/logger"
)

const (
	sweepInterval   = 10 * time.Minute
	shutdownTimeout = 15 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	go deps.Listener.Run(ctx)
	deps.Limiters.StartSweepers(ctx, sweepInterval)

	jobs, err := scheduler.New(
		scheduler.Job{Name: "table_stats", Schedule: cfg.Public.StatsSchedule, Run: deps.Stats.Update},
		scheduler.Job{Name: "listener_ping", Schedule: cfg.Public.PingSchedule, Run: func(context.Context) error {
			return deps.Listener.Ping()
		}},
	)
	if err != nil {
		logger.Log.Error("failed to schedule jobs", "error", err)
		os.Exit(1)
	}
	jobs.Start(ctx)

	srv := &http.Server{
		Addr:              cfg.Public.Addr,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
	// hijacked websocket connections are not tracked by the server
	deps.Hub.Close()
}
