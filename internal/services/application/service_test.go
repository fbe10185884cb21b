package application

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"huntboard/internal/board"
	"huntboard/internal/database"
	"huntboard/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
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

// newTestService wraps the database in a repository and builds a service
// with no event client
func newTestService(db *sql.DB) Service {
	return NewService(database.NewRepository(db), nil)
}

// createTestApplication inserts an application directly and returns its ID
func createTestApplication(t *testing.T, db *sql.DB, company string, status models.Status, orderKey string) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		"INSERT INTO applications (company, role, status, order_key) VALUES (?, ?, ?, ?)",
		company, "Engineer", string(status), orderKey)
	if err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// placementOf reads an application's status and order key straight from the
// database
func placementOf(t *testing.T, db *sql.DB, id int) (string, string) {
	t.Helper()
	var status, orderKey string
	err := db.QueryRowContext(context.Background(),
		"SELECT status, order_key FROM applications WHERE id = ?", id).Scan(&status, &orderKey)
	if err != nil {
		t.Fatalf("Failed to read placement: %v", err)
	}
	return status, orderKey
}

// ============================================================================
// TEST CASES - CREATE
// ============================================================================

func TestCreateApplication(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	req := CreateApplicationRequest{
		Company:  "Initech",
		Role:     "Backend Engineer",
		URL:      "https://initech.example/careers/42",
		Location: "Remote",
		Salary:   "120k",
		Notes:    "Referred by Peter",
		Status:   models.StatusApplied,
	}

	result, err := svc.CreateApplication(context.Background(), req)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result == nil {
		t.Fatal("Expected application result, got nil")
	}

	if result.Company != "Initech" {
		t.Errorf("Expected company 'Initech', got '%s'", result.Company)
	}

	if result.Status != models.StatusApplied {
		t.Errorf("Expected status %s, got %s", models.StatusApplied, result.Status)
	}

	if result.ID == 0 {
		t.Error("Expected application ID to be set")
	}

	if result.OrderKey == "" {
		t.Error("Expected an order key to be assigned")
	}
}

func TestCreateApplication_DefaultsToWishlist(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	result, err := svc.CreateApplication(context.Background(), CreateApplicationRequest{
		Company: "Globex",
		Role:    "SRE",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Status != models.StatusWishlist {
		t.Errorf("Expected status %s, got %s", models.StatusWishlist, result.Status)
	}
}

func TestCreateApplication_EmptyCompany(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	_, err := svc.CreateApplication(context.Background(), CreateApplicationRequest{
		Company: "",
		Role:    "Engineer",
	})

	if !errors.Is(err, ErrEmptyCompany) {
		t.Errorf("Expected ErrEmptyCompany, got %v", err)
	}
}

func TestCreateApplication_InvalidStatus(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	_, err := svc.CreateApplication(context.Background(), CreateApplicationRequest{
		Company: "Initech",
		Role:    "Engineer",
		Status:  models.Status("ARCHIVED"),
	})

	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestCreateApplication_AppendsToEndOfColumn(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	var ids []int
	for _, company := range []string{"First", "Second", "Third"} {
		app, err := svc.CreateApplication(context.Background(), CreateApplicationRequest{
			Company: company,
			Role:    "Engineer",
			Status:  models.StatusApplied,
		})
		if err != nil {
			t.Fatalf("Failed to create application: %v", err)
		}
		ids = append(ids, app.ID)
	}

	column, err := svc.ListByStatus(context.Background(), models.StatusApplied)
	if err != nil {
		t.Fatalf("Failed to list column: %v", err)
	}

	if len(column) != 3 {
		t.Fatalf("Expected 3 applications, got %d", len(column))
	}

	for i, app := range column {
		if app.ID != ids[i] {
			t.Errorf("Position %d: expected application %d, got %d", i, ids[i], app.ID)
		}
	}

	if !(column[0].OrderKey < column[1].OrderKey && column[1].OrderKey < column[2].OrderKey) {
		t.Errorf("Expected strictly ascending keys, got %q %q %q",
			column[0].OrderKey, column[1].OrderKey, column[2].OrderKey)
	}
}

// ============================================================================
// TEST CASES - UPDATE / DELETE
// ============================================================================

func TestUpdateApplication_PartialFields(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	id := createTestApplication(t, db, "Initech", models.StatusApplied, "V")
	svc := newTestService(db)

	notes := "Phone screen on Friday"
	err := svc.UpdateApplication(context.Background(), UpdateApplicationRequest{
		ID:    id,
		Notes: &notes,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	app, err := svc.GetApplication(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get application: %v", err)
	}

	if app.Notes != notes {
		t.Errorf("Expected notes %q, got %q", notes, app.Notes)
	}

	// Untouched fields survive a partial update
	if app.Company != "Initech" {
		t.Errorf("Expected company 'Initech', got %q", app.Company)
	}
}

func TestUpdateApplication_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	company := "Initech"
	err := svc.UpdateApplication(context.Background(), UpdateApplicationRequest{
		ID:      999,
		Company: &company,
	})

	if !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("Expected ErrApplicationNotFound, got %v", err)
	}
}

func TestDeleteApplication(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	id := createTestApplication(t, db, "Initech", models.StatusApplied, "V")
	svc := newTestService(db)

	if err := svc.DeleteApplication(context.Background(), id); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := svc.GetApplication(context.Background(), id)
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("Expected ErrApplicationNotFound after delete, got %v", err)
	}
}

// ============================================================================
// TEST CASES - MOVEMENT
// ============================================================================

func TestMoveApplication_ToColumn(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	id := createTestApplication(t, db, "Initech", models.StatusWishlist, "V")
	createTestApplication(t, db, "Globex", models.StatusApplied, "V")
	svc := newTestService(db)

	placement, err := svc.MoveApplication(context.Background(), id,
		board.ColumnTarget{Status: models.StatusApplied})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if placement.Status != models.StatusApplied {
		t.Errorf("Expected status %s, got %s", models.StatusApplied, placement.Status)
	}

	// Landed after the existing card
	if !(placement.OrderKey > "V") {
		t.Errorf("Expected key after 'V', got %q", placement.OrderKey)
	}

	status, orderKey := placementOf(t, db, id)
	if status != string(models.StatusApplied) || orderKey != placement.OrderKey {
		t.Errorf("Persisted placement %s/%q does not match returned %s/%q",
			status, orderKey, placement.Status, placement.OrderKey)
	}
}

func TestMoveApplication_BeforeSibling(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	topID := createTestApplication(t, db, "Top", models.StatusApplied, "F")
	bottomID := createTestApplication(t, db, "Bottom", models.StatusApplied, "k")
	movedID := createTestApplication(t, db, "Moved", models.StatusWishlist, "V")
	svc := newTestService(db)

	placement, err := svc.MoveApplication(context.Background(), movedID,
		board.CardTarget{ID: bottomID, Dir: board.DirectionBefore})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !(placement.OrderKey > "F" && placement.OrderKey < "k") {
		t.Errorf("Expected key between 'F' and 'k', got %q", placement.OrderKey)
	}

	column, err := svc.ListByStatus(context.Background(), models.StatusApplied)
	if err != nil {
		t.Fatalf("Failed to list column: %v", err)
	}

	want := []int{topID, movedID, bottomID}
	for i, app := range column {
		if app.ID != want[i] {
			t.Errorf("Position %d: expected application %d, got %d", i, want[i], app.ID)
		}
	}
}

func TestMoveApplication_NoOpSkipsWrite(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	createTestApplication(t, db, "Top", models.StatusApplied, "F")
	id := createTestApplication(t, db, "Last", models.StatusApplied, "V")
	svc := newTestService(db)

	// Dropping the last card onto its own column resolves to where it
	// already is
	placement, err := svc.MoveApplication(context.Background(), id,
		board.ColumnTarget{Status: models.StatusApplied})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if placement.OrderKey != "V" {
		t.Errorf("Expected key 'V' to be kept, got %q", placement.OrderKey)
	}

	_, orderKey := placementOf(t, db, id)
	if orderKey != "V" {
		t.Errorf("Expected stored key 'V', got %q", orderKey)
	}
}

func TestMoveApplication_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	_, err := svc.MoveApplication(context.Background(), 999,
		board.ColumnTarget{Status: models.StatusApplied})

	if !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("Expected ErrApplicationNotFound, got %v", err)
	}
}

func TestSavePlacement_MissingApplication(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	svc := newTestService(db)

	err := svc.SavePlacement(context.Background(), 999,
		models.Placement{Status: models.StatusApplied, OrderKey: "V"})

	if !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("Expected ErrApplicationNotFound, got %v", err)
	}
}

func TestBoard_GroupsEveryStatus(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	createTestApplication(t, db, "Initech", models.StatusApplied, "V")
	createTestApplication(t, db, "Globex", models.StatusOffer, "V")
	svc := newTestService(db)

	columns, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(columns) != len(models.AllStatuses()) {
		t.Errorf("Expected %d columns, got %d", len(models.AllStatuses()), len(columns))
	}

	if len(columns[models.StatusApplied]) != 1 {
		t.Errorf("Expected 1 application in %s", models.StatusApplied)
	}

	if len(columns[models.StatusWishlist]) != 0 {
		t.Errorf("Expected empty %s column", models.StatusWishlist)
	}
}
