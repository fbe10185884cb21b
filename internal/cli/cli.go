package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"huntboard/internal/app"
	"huntboard/internal/database"
	"huntboard/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App         *app.App // Application container with services
	db          *sql.DB
	eventClient events.EventPublisher
	ctx         context.Context
}

// NewCLI initializes the CLI with database and optional daemon connection
func NewCLI(ctx context.Context) (*CLI, error) {
	// Initialize database
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Try to connect to daemon (optional - silent fallback)
	home, _ := os.UserHomeDir()
	socketPath := filepath.Join(home, ".huntboard", "huntboard.sock")

	var eventClient events.EventPublisher
	client, err := events.NewClient(socketPath)
	if err == nil {
		// Try to connect - if it fails, daemon isn't running (graceful degradation)
		if err := client.Connect(ctx); err == nil {
			eventClient = client
		}
	}

	application := app.New(database.NewRepository(db), app.WithEventPublisher(eventClient))

	return &CLI{
		App:         application,
		db:          db,
		eventClient: eventClient,
		ctx:         ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.eventClient != nil {
		_ = c.eventClient.Close()
	}
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
