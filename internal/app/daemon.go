package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/events"
)

// ConnectDaemon connects to the event daemon for live updates. The daemon
// is optional: failures are logged and nil is returned.
func ConnectDaemon(ctx context.Context, cfg *config.Config) *events.Client {
	socketPath, err := cfg.SocketPath()
	if err != nil {
		slog.Warn("no daemon socket path", "error", err)
		return nil
	}

	client, err := events.NewClient(socketPath)
	if err != nil {
		daemonErr := events.ClassifyDaemonError(err, socketPath)
		slog.Warn("failed to create daemon client", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		return nil
	}

	if err := client.Connect(ctx); err != nil {
		daemonErr := events.ClassifyDaemonError(err, socketPath)
		slog.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		_ = client.Close()
		return nil
	}
	return client
}
