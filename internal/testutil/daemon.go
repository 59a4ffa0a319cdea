package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/adflow/internal/app"
	"github.com/thenoetrevino/adflow/internal/config"
	"github.com/thenoetrevino/adflow/internal/daemon"
	"github.com/thenoetrevino/adflow/internal/events"
	"github.com/thenoetrevino/adflow/internal/logging"
)

// StartTestDaemon runs an event daemon on a socket in a temp dir and
// returns the socket path once it accepts connections. The daemon stops
// when the test ends.
func StartTestDaemon(t *testing.T) string {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "test-adflow.sock")
	server, err := daemon.NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		_ = server.Shutdown()
		<-done
	})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(socketPath); err == nil {
			return socketPath
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("Timeout waiting for daemon socket to be created")
	return ""
}

// ConnectTestClient connects an event client to the daemon at socketPath.
// The caller owns the client; hand it to an App or close it.
func ConnectTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()

	client, err := events.NewClient(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		_ = client.Close()
		t.Fatalf("Failed to connect test client: %v", err)
	}
	return client
}

// OpenSyncedApp opens an app on the sqlite store in dataDir, announcing
// and receiving changes through the daemon at socketPath. Its Watch loop
// runs until the test ends.
func OpenSyncedApp(t *testing.T, dataDir, socketPath string) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.DataDir = dataDir

	a, err := app.Open(context.Background(), cfg,
		app.WithLogger(logging.Discard()),
		app.WithEventPublisher(ConnectTestClient(t, socketPath)))
	if err != nil {
		t.Fatalf("Failed to open synced app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = a.Watch(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		_ = a.Close()
	})
	return a
}
