package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/melih/lighthouse-info/internal/adapters/docker"
	"github.com/melih/lighthouse-info/internal/adapters/http"
	"github.com/melih/lighthouse-info/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dockerAdapter, err := docker.NewAdapter(cfg.Docker)
	if err != nil {
		slog.Error("failed to initialize docker adapter", "error", err)
		os.Exit(1)
	}
	defer dockerAdapter.Close()

	app := http.NewApp(dockerAdapter, cfg.Server.ReadTimeout.Duration)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Listen)
	if err := app.Listen(cfg.Server.Listen); err != nil {
		slog.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
