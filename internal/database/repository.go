package database

import (
	"context"
	"database/sql"

	"huntboard/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ApplicationRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ApplicationRepo: &ApplicationRepo{db: db},
	}
}

// Wrapper methods for ApplicationRepo to maintain existing API
func (r *Repository) CreateApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	return r.ApplicationRepo.Create(ctx, app)
}

func (r *Repository) GetApplicationByID(ctx context.Context, id int) (*models.Application, error) {
	return r.ApplicationRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	return r.ApplicationRepo.GetAll(ctx)
}

func (r *Repository) GetApplicationsByStatus(ctx context.Context, status models.Status) ([]*models.Application, error) {
	return r.ApplicationRepo.GetByStatus(ctx, status)
}

func (r *Repository) UpdateApplication(ctx context.Context, id int, company, role, url, location, salary, notes string) error {
	return r.ApplicationRepo.Update(ctx, id, company, role, url, location, salary, notes)
}

func (r *Repository) UpdatePlacement(ctx context.Context, id int, placement models.Placement) error {
	return r.ApplicationRepo.UpdatePlacement(ctx, id, placement)
}

func (r *Repository) DeleteApplication(ctx context.Context, id int) error {
	return r.ApplicationRepo.Delete(ctx, id)
}

func (r *Repository) ImportApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	return r.ApplicationRepo.Import(ctx, app)
}
