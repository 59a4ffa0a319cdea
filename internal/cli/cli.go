// Package cli holds the shared plumbing of the adflow subcommands: the
// application handle, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/adflow/internal/app"
	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	logFile  io.Closer
	borrowed bool // App belongs to the caller and is not closed here
}

// Options tweak how NewCLI opens the application
type Options struct {
	// Ephemeral keeps every document in memory; nothing is written to disk
	// and the daemon is not contacted.
	Ephemeral bool
}

// NewCLI loads the configuration, opens the store and connects to the
// daemon when one is running.
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	c := &CLI{}
	var appOpts []app.Option

	if opts.Ephemeral {
		cfg.Storage.Backend = config.BackendMemory
		appOpts = append(appOpts, app.WithLogger(logging.Discard()))
	} else {
		dataDir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}
		// Logs go to the same file as the TUI so stdout stays machine-readable
		if c.logFile, err = logging.Init(dataDir); err != nil {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
		appOpts = append(appOpts, app.WithLogger(slog.Default()))

		// Optional: without a daemon other processes just won't see changes live
		if client := app.ConnectDaemon(ctx, cfg); client != nil {
			appOpts = append(appOpts, app.WithEventPublisher(client))
		}
	}

	c.App, err = app.Open(ctx, cfg, appOpts...)
	if err != nil {
		c.closeLog()
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return c, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	defer c.closeLog()
	return c.App.Close()
}

func (c *CLI) closeLog() {
	if c.logFile != nil {
		_ = c.logFile.Close()
	}
}

// CloseQuietly closes c, logging any error
func CloseQuietly(c *CLI) {
	if err := c.Close(); err != nil {
		slog.Error("failed to close CLI", "error", err)
	}
}
