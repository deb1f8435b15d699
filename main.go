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

	"github.com/gin-gonic/gin"

	"github.com/Akash-2201/Student-data-analysis/config"
	"github.com/Akash-2201/Student-data-analysis/db"
	"github.com/Akash-2201/Student-data-analysis/handlers"
	"github.com/Akash-2201/Student-data-analysis/logging"
	"github.com/Akash-2201/Student-data-analysis/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.Initialize(cfg.Logging, os.Stdout)
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Report cache is optional; without it reports are only rendered once
	var reports handlers.ReportStore
	if cfg.Redis.Enabled {
		redisClient, err := db.InitializeRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Error("Failed to connect to report cache", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()
		reports = db.NewReportCache(redisClient, cfg.Redis.TTL)
	} else {
		slog.Info("Report cache disabled")
	}

	apiHandler := handlers.NewAPIHandler(reports, metrics.New(), cfg.Server.MaxUploadBytes)
	router, err := handlers.NewRouter(apiHandler, cfg.Session)
	if err != nil {
		slog.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to run server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}
