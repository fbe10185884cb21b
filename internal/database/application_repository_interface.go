package database

import (
	"context"

	"huntboard/internal/models"
)

// ApplicationReader defines read operations for applications.
type ApplicationReader interface {
	GetApplicationByID(ctx context.Context, id int) (*models.Application, error)
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
	GetApplicationsByStatus(ctx context.Context, status models.Status) ([]*models.Application, error)
}

// ApplicationWriter defines write operations for an application's
// descriptive fields.
type ApplicationWriter interface {
	CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int, company, role, url, location, salary, notes string) error
	DeleteApplication(ctx context.Context, id int) error
}

// PlacementWriter persists board positions. It is the only write path for
// the status and order_key columns.
type PlacementWriter interface {
	UpdatePlacement(ctx context.Context, id int, placement models.Placement) error
}

// ApplicationRepository combines all application operations.
type ApplicationRepository interface {
	ApplicationReader
	ApplicationWriter
	PlacementWriter
}
