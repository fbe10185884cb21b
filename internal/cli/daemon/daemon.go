// Package daemon provides the subcommand that runs the live-update daemon.
package daemon

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"huntboard/internal/daemon"
)

// DaemonCmd returns the daemon subcommand
func DaemonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the live-update daemon in the foreground",
		Long: `Run the event daemon that fans database changes out to every connected
huntboard process, so open boards refresh as soon as another window or
command changes an application.

The daemon listens on a unix socket at ~/.huntboard/huntboard.sock and
runs until interrupted.

Examples:
  # In a spare terminal
  huntboard daemon

  # Under a systemd user unit
  ExecStart=/usr/local/bin/huntboard daemon
`,
		Args: cobra.NoArgs,
		RunE: runDaemon,
	}

	return cmd
}

func runDaemon(cmd *cobra.Command, args []string) error {
	// Shut down cleanly on the usual termination signals
	ctx, cancel := signal.NotifyContext(
		cmd.Context(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	// Read HOME from the environment first so service managers can set it
	home := os.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
	}

	huntboardDir := filepath.Join(home, ".huntboard")
	socketPath := filepath.Join(huntboardDir, "huntboard.sock")

	// Ensure the directory exists with secure permissions
	if err := os.MkdirAll(huntboardDir, 0700); err != nil {
		return fmt.Errorf("failed to create .huntboard directory: %w", err)
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	slog.Info("huntboard daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	// Start blocks until a signal arrives or the server fails
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("daemon error: %w", err)
	}

	slog.Info("huntboard daemon shutting down gracefully")
	return nil
}
