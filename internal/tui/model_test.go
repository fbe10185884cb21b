package tui

import (
	"context"
	"testing"
	"time"

	"huntboard/internal/board"
	"huntboard/internal/config"
	"huntboard/internal/models"
	"huntboard/internal/tui/state"
)

// boardApp builds a board record for model tests. Later ids get later
// timestamps so the sorter's tie-break stays deterministic.
func boardApp(id int, company string, status models.Status, key string) *models.Application {
	return &models.Application{
		ID:        id,
		Company:   company,
		Role:      "Engineer",
		Status:    status,
		OrderKey:  key,
		CreatedAt: time.Unix(int64(1000+id), 0),
	}
}

// newTestModel builds a model around an in-memory working set. The pieces
// under test here never reach the service or the database.
func newTestModel(apps []*models.Application) *Model {
	cfg := &config.Config{
		ColorScheme: config.DefaultColorScheme(),
		KeyMappings: config.DefaultKeyMappings(),
	}
	return &Model{
		Ctx:               context.Background(),
		Config:            cfg,
		AppState:          state.NewAppState(apps),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		Drag:              board.NewController(),
	}
}

// grabCard starts a gesture on the given card and puts the model in
// GrabMode, the way handleGrab does.
func grabCard(t *testing.T, m *Model, app *models.Application) board.Session {
	t.Helper()
	if err := m.Drag.Start(app); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.UiState.SetMode(state.GrabMode)
	sess, ok := m.Drag.Session()
	if !ok {
		t.Fatal("expected an active session after Start")
	}
	return sess
}
