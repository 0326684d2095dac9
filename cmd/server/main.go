package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/engreg/engreg/internal/api"
	"github.com/engreg/engreg/internal/config"
	"github.com/engreg/engreg/internal/engineer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	repo := engineer.NewMemoryRepository()
	query := engineer.NewQueryService(repo)
	command := engineer.NewCommandService(query, repo)

	if cfg.SeedDemoData {
		seedDemoData(command)
	}

	router := api.NewRouter(api.RouterDeps{
		Query:   query,
		Command: command,
		Counter: repo,
		Version: cfg.Version,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting engineer registry server", "port", cfg.Port, "version", cfg.Version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// seedDemoData loads the two sample engineers used in demos and manual
// testing. Goes through the command service so ids are assigned normally.
func seedDemoData(command *engineer.CommandService) {
	ctx := context.Background()
	command.Create(ctx, "Pawa", []string{"java", "spring"})
	command.Create(ctx, "Miha", []string{"java", "kotlin", "spring"})
	slog.Info("seeded demo engineers")
}
