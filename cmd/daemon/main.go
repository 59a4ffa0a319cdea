package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/daemon"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// HOME is set by systemd/launchd units; ADFLOW_DATA_DIR wins over both
	dataDir, err := cfg.DataDir()
	if err != nil {
		slog.Error("failed to resolve data directory", "error", err)
		os.Exit(1)
	}
	socketPath, err := cfg.SocketPath()
	if err != nil {
		slog.Error("failed to resolve socket path", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		slog.Error("failed to create data directory", "path", dataDir, "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("adflow daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	snap := server.Metrics().GetSnapshot()
	slog.Info("adflow daemon shut down",
		"uptime", snap.Uptime,
		"events_received", snap.EventsReceived,
		"events_sent", snap.EventsSent,
		"events_dropped", snap.EventsDropped)
}
