package app

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"huntboard/internal/database"
)

func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	return database.NewRepository(db)
}

func TestNew(t *testing.T) {
	repo := setupTestRepo(t)

	// Create app with no event client
	app := New(repo)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}

	if app.ApplicationService == nil {
		t.Error("Expected ApplicationService to be initialized")
	}

	if app.Repo() == nil {
		t.Error("Expected repository to be reachable")
	}

	if app.EventClient() != nil {
		t.Error("Expected nil event client when none is configured")
	}
}

func TestClose(t *testing.T) {
	repo := setupTestRepo(t)

	app := New(repo)

	err := app.Close()
	if err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
