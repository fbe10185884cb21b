// Package launcher boots the interactive board: logging, config, database,
// the optional daemon connection, and the bubbletea program itself.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"huntboard/internal/app"
	"huntboard/internal/config"
	"huntboard/internal/database"
	"huntboard/internal/events"
	"huntboard/internal/logging"
	"huntboard/internal/tui"
)

// Launch starts the TUI and blocks until it exits.
func Launch() error {
	// Logging goes to a file so slog output never corrupts the alt screen.
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The daemon is optional: without it the board works, it just won't
	// refresh when another huntboard process changes something.
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	socketPath := filepath.Join(home, ".huntboard", "huntboard.sock")

	eventClient, err := events.NewClient(socketPath)
	if err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Warn("failed to create daemon client", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		eventClient = nil
	} else if err := eventClient.Connect(ctx); err != nil {
		daemonErr := events.ClassifyDaemonError(err)
		slog.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
		slog.Info("continuing without live updates")
		eventClient = nil
	}
	defer func() {
		if eventClient != nil {
			if err := eventClient.Close(); err != nil {
				slog.Error("error closing event client", "error", err)
			}
		}
	}()

	// Database init gets its own context so a quit signal during startup
	// doesn't abort migrations halfway.
	db, err := database.InitDB(context.Background())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		// Give in-flight queries a moment before the handle goes away.
		time.Sleep(100 * time.Millisecond)
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	var publisher events.EventPublisher
	if eventClient != nil {
		publisher = eventClient
	}

	application := app.New(database.NewRepository(db), app.WithEventPublisher(publisher))
	model := tui.InitialModel(ctx, application.ApplicationService, cfg, publisher)
	p := tea.NewProgram(&model, tea.WithContext(ctx))

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
		// Let bubbletea restore the terminal before the deferred closes run.
		select {
		case <-errChan:
		case <-time.After(5 * time.Second):
		}
	}

	return nil
}
