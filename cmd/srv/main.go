package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gookit/slog"

	"github.com/p0lemic/SIFO/pkg/server"
	"github.com/p0lemic/SIFO/pkg/server/config"
)

func main() {
	configPath := flag.String("C", "config.yaml", "path to the configuration file")
	envPrefix := flag.String("E", "SIFO", "prefix for environment variable overrides")
	flag.Parse()

	slog.SetLogLevel(slog.InfoLevel)
	slog.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.PrettyPrint = false
	}))

	cfg, err := config.LoadFromPath(*configPath, *envPrefix)
	if err != nil {
		slog.Fatalf("Config load failed: %v", err)
	}

	srv := server.New(server.WithConfig(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Infof("Metadata API listening on: %s", srv.SocketAddr())
		errCh <- srv.ListenAndServe(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Errorf("Server stopped with error: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Errorf("Graceful shutdown failed: %v", err)
			os.Exit(1)
		}
		slog.Info("Server shut down gracefully")
	}
}
