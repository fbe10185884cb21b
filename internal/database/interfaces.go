// Package database defines repository interfaces for data access
package database

import (
	"context"

	"huntboard/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the TUI and CLI. Services depend on this interface rather than on a
// concrete repository.
type DataStore interface {
	// Applications
	CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error)
	GetApplicationByID(ctx context.Context, id int) (*models.Application, error)
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
	GetApplicationsByStatus(ctx context.Context, status models.Status) ([]*models.Application, error)
	UpdateApplication(ctx context.Context, id int, company, role, url, location, salary, notes string) error
	UpdatePlacement(ctx context.Context, id int, placement models.Placement) error
	DeleteApplication(ctx context.Context, id int) error

	// Backups
	ImportApplication(ctx context.Context, app *models.Application) (*models.Application, error)
}
