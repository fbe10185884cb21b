package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"huntboard/internal/daemon"
	"huntboard/internal/events"
)

// TestSocketPath returns a unique socket path under a per-test temp dir.
func TestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "huntboard-test.sock")
}

// StartTestDaemon runs a daemon server on a fresh socket and waits for it to
// accept connections. Shutdown is registered with t.Cleanup.
func StartTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := TestSocketPath(t)

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("daemon shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("daemon server error: %v", err)
		}
	}()

	// The socket appearing on disk means the listener is up.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(socketPath); err == nil {
			time.Sleep(10 * time.Millisecond)
			return server, socketPath
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatal("Timeout waiting for daemon socket")
	return nil, ""
}

// ConnectTestClient connects an event client to the given socket, with
// cleanup registered.
func ConnectTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()

	client, err := events.NewClient(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("client close error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}

	return client
}
