// Package testutil holds test helpers shared across packages: in-memory
// databases, CLI command execution, and daemon fixtures. Packages the
// helpers depend on (database, daemon, events) keep their own local copies
// to avoid import cycles.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"huntboard/internal/models"
)

// SetupTestDB creates an in-memory database with the applications schema.
// The schema mirrors the production migrations; keeping it inline means the
// helper works without importing the database package.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS applications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company TEXT NOT NULL,
		role TEXT NOT NULL,
		url TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		salary TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		order_key TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_applications_status
	ON applications(status, order_key);
	`
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// SeedApplication inserts one application and returns its id.
func SeedApplication(t *testing.T, db *sql.DB, company string, status models.Status, orderKey string) int {
	t.Helper()

	result, err := db.ExecContext(context.Background(),
		`INSERT INTO applications (company, role, status, order_key) VALUES (?, ?, ?, ?)`,
		company, "Engineer", string(status), orderKey)
	if err != nil {
		t.Fatalf("Failed to seed application: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read seeded id: %v", err)
	}
	return int(id)
}
