package app

import (
	"huntboard/internal/database"
	"huntboard/internal/events"
	applicationservice "huntboard/internal/services/application"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Event system for live updates
	eventClient events.EventPublisher

	// Service layer (business logic)
	ApplicationService applicationservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:               repo,
		eventClient:        cfg.eventClient,
		ApplicationService: applicationservice.NewService(repo, cfg.eventClient),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// EventClient returns the event publisher, nil when no daemon is running.
func (a *App) EventClient() events.EventPublisher {
	return a.eventClient
}

// Close performs cleanup of application resources.
// Currently a no-op, but provided for future resource management needs.
func (a *App) Close() error {
	// Future: Close any service-specific resources
	return nil
}
