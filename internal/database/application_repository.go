package database

import (
	"context"
	"database/sql"
	"fmt"

	"huntboard/internal/models"
)

// ApplicationRepo handles all database operations for applications
type ApplicationRepo struct {
	db *sql.DB
}

// Create inserts a new application and returns it with its generated id and
// timestamps
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO applications (company, role, url, location, salary, notes, status, order_key)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		app.Company, app.Role, app.URL, app.Location, app.Salary, app.Notes, string(app.Status), app.OrderKey,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Retrieve the created application to get timestamps
	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single application
func (r *ApplicationRepo) GetByID(ctx context.Context, id int) (*models.Application, error) {
	app := &models.Application{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, company, role, url, location, salary, notes, status, order_key, created_at, updated_at
		 FROM applications WHERE id = ?`,
		id,
	).Scan(
		&app.ID, &app.Company, &app.Role, &app.URL, &app.Location,
		&app.Salary, &app.Notes, &app.Status, &app.OrderKey,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return app, nil
}

// GetAll retrieves every application on the board
func (r *ApplicationRepo) GetAll(ctx context.Context) ([]*models.Application, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, company, role, url, location, salary, notes, status, order_key, created_at, updated_at
		 FROM applications
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows)
}

// GetByStatus retrieves the applications in one pipeline stage. Rows come
// back in insertion order; display order is the board sorter's job.
func (r *ApplicationRepo) GetByStatus(ctx context.Context, status models.Status) ([]*models.Application, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, company, role, url, location, salary, notes, status, order_key, created_at, updated_at
		 FROM applications
		 WHERE status = ?
		 ORDER BY id`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanApplications(rows)
}

// Update rewrites an application's descriptive fields. Board position is
// not touched here; that goes through UpdatePlacement.
func (r *ApplicationRepo) Update(ctx context.Context, id int, company, role, url, location, salary, notes string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE applications
		 SET company = ?, role = ?, url = ?, location = ?, salary = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		company, role, url, location, salary, notes, id,
	)
	return err
}

// UpdatePlacement persists a board position in a single atomic write. A
// missing id is an error so callers can tell a lost record from a saved one.
func (r *ApplicationRepo) UpdatePlacement(ctx context.Context, id int, placement models.Placement) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications
		 SET status = ?, order_key = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(placement.Status), placement.OrderKey, id,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("application %d not found: %w", id, sql.ErrNoRows)
	}

	return nil
}

// Delete removes an application from the database
func (r *ApplicationRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM applications WHERE id = ?", id)
	return err
}

// Import inserts a record restored from a backup, keeping its original
// timestamps when the backup carried them. Timestamps are bound as formatted
// strings so they match the CURRENT_TIMESTAMP format the defaults produce.
func (r *ApplicationRepo) Import(ctx context.Context, app *models.Application) (*models.Application, error) {
	if app.CreatedAt.IsZero() {
		return r.Create(ctx, app)
	}

	updated := app.UpdatedAt
	if updated.IsZero() {
		updated = app.CreatedAt
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO applications (company, role, url, location, salary, notes, status, order_key, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.Company, app.Role, app.URL, app.Location, app.Salary, app.Notes, string(app.Status), app.OrderKey,
		app.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		updated.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

func scanApplications(rows *sql.Rows) ([]*models.Application, error) {
	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{}
		if err := rows.Scan(
			&app.ID, &app.Company, &app.Role, &app.URL, &app.Location,
			&app.Salary, &app.Notes, &app.Status, &app.OrderKey,
			&app.CreatedAt, &app.UpdatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}
