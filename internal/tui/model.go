package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"huntboard/internal/board"
	"huntboard/internal/config"
	"huntboard/internal/events"
	"huntboard/internal/models"
	applicationservice "huntboard/internal/services/application"
	"huntboard/internal/tui/components"
	"huntboard/internal/tui/state"
)

// dbTimeout bounds every database call made from the UI loop.
const dbTimeout = 5 * time.Second

// Model represents the application state for the TUI
type Model struct {
	Ctx         context.Context
	Svc         applicationservice.Service
	Config      *config.Config
	EventClient events.EventPublisher

	AppState          *state.AppState
	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState

	// Drag runs the grab/drop state machine. The model feeds it targets and
	// applies the placements it hands back; it never touches the UI itself.
	Drag *board.Controller

	// EventChan receives change events from the daemon, nil when not connected
	EventChan <-chan events.Event

	// SubscriptionStarted tracks whether the event listener command is running
	SubscriptionStarted bool
}

// InitialModel creates and initializes the TUI model with data from the
// database. The event client may be nil when no daemon is running; the board
// still works, it just won't live-refresh.
func InitialModel(ctx context.Context, svc applicationservice.Service, cfg *config.Config, eventClient events.EventPublisher) Model {
	components.InitStyles(cfg.ColorScheme)

	apps, err := svc.ListApplications(ctx)
	if err != nil {
		slog.Error("Error loading applications", "error", err)
		apps = []*models.Application{}
	}

	var eventChan <-chan events.Event
	if eventClient != nil {
		eventChan, err = eventClient.Listen(ctx)
		if err != nil {
			slog.Warn("Could not subscribe to daemon events", "error", err)
			eventChan = nil
		}
	}

	return Model{
		Ctx:               ctx,
		Svc:               svc,
		Config:            cfg,
		EventClient:       eventClient,
		AppState:          state.NewAppState(apps),
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		Drag:              board.NewController(),
		EventChan:         eventChan,
	}
}

// Init returns the initial command. Data is loaded in InitialModel and the
// event subscription starts on the first update, so there is nothing to do.
func (m *Model) Init() tea.Cmd {
	return nil
}

// DbContext returns a context for a single database call from the UI loop.
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// SelectedStatus returns the pipeline stage of the selected column.
func (m *Model) SelectedStatus() models.Status {
	statuses := models.AllStatuses()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(statuses) {
		idx = 0
	}
	return statuses[idx]
}

// CurrentColumn returns the applications displayed in the selected column.
func (m *Model) CurrentColumn() []*models.Application {
	return m.AppState.Column(m.SelectedStatus())
}

// CurrentApplication returns the application under the cursor.
// Returns nil if the selected column is empty or the cursor is out of bounds.
func (m *Model) CurrentApplication() *models.Application {
	column := m.CurrentColumn()
	if len(column) == 0 {
		return nil
	}
	if m.UiState.SelectedCard() >= len(column) {
		return nil
	}
	return column[m.UiState.SelectedCard()]
}

// GrabbedID returns the ID of the card being carried, 0 when idle.
func (m *Model) GrabbedID() int {
	sess, ok := m.Drag.Session()
	if !ok {
		return 0
	}
	return sess.ApplicationID
}

// selectApplication moves the cursor onto the given application wherever it
// currently displays. Used after moves and reloads so the selection follows
// the card.
func (m *Model) selectApplication(id int) {
	app := m.AppState.Find(id)
	if app == nil {
		m.clampSelection()
		return
	}

	statuses := models.AllStatuses()
	for i, status := range statuses {
		if status == app.Status {
			m.UiState.SetSelectedColumn(i)
			break
		}
	}

	idx := m.AppState.IndexOf(app.Status, id)
	if idx < 0 {
		idx = 0
	}
	m.UiState.SetSelectedCard(idx)

	m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	m.UiState.EnsureCardVisible(app.Status, idx, components.MaxVisibleCards(m.UiState.ContentHeight()))
}

// clampSelection pulls the cursor back into bounds after the board changed
// underneath it.
func (m *Model) clampSelection() {
	statuses := models.AllStatuses()
	if m.UiState.SelectedColumn() >= len(statuses) {
		m.UiState.SetSelectedColumn(len(statuses) - 1)
	}
	if m.UiState.SelectedColumn() < 0 {
		m.UiState.SetSelectedColumn(0)
	}

	column := m.CurrentColumn()
	if len(column) == 0 {
		m.UiState.SetSelectedCard(0)
		return
	}
	if m.UiState.SelectedCard() >= len(column) {
		m.UiState.SetSelectedCard(len(column) - 1)
	}
}
