// Standalone daemon binary for running under a service manager. It is the
// same server the `huntboard daemon` subcommand runs, without the CLI around
// it.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"huntboard/internal/daemon"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	// HOME comes from the environment first so systemd units can set it
	home := os.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			slog.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
	}

	huntboardDir := filepath.Join(home, ".huntboard")
	socketPath := filepath.Join(huntboardDir, "huntboard.sock")

	if err := os.MkdirAll(huntboardDir, 0700); err != nil {
		slog.Error("failed to create .huntboard directory", "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("huntboard daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("huntboard daemon shutting down gracefully")
}
