// Package launcher wires configuration, logging, the event daemon and the
// store together and starts the TUI.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/adflow/internal/app"
	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/events"
	"github.com/thenoetrevino/adflow/internal/logging"
	"github.com/thenoetrevino/adflow/internal/tui"
)

// shutdownGrace bounds how long in-flight saves may run after a signal
const shutdownGrace = 5 * time.Second

// Launch starts the TUI application. An ephemeral session keeps all data
// in memory and does not talk to the daemon.
func Launch(ephemeral bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if ephemeral {
		cfg.Storage.Backend = config.BackendMemory
	}

	dataDir, err := cfg.DataDir()
	if err != nil {
		return err
	}

	// Initialize logging to file before anything else touches slog
	logFile, err := logging.Init(dataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	var eventClient *events.Client
	if !ephemeral {
		eventClient = app.ConnectDaemon(ctx, cfg)
	}

	var opts []app.Option
	if eventClient != nil {
		opts = append(opts, app.WithEventPublisher(eventClient))
	}
	a, err := app.Open(ctx, cfg, opts...)
	if err != nil {
		if eventClient != nil {
			_ = eventClient.Close()
		}
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	// pick up changes made by the CLI or another TUI
	go func() {
		if err := a.Watch(ctx); err != nil && ctx.Err() == nil {
			slog.Error("stopped watching daemon events", "error", err)
		}
	}()

	model := tui.New(ctx, a, cfg, tui.Options{Live: eventClient != nil})
	p := tea.NewProgram(model, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
			slog.Warn("program did not exit in time")
		}
	}

	return nil
}
