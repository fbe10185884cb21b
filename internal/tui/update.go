package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"huntboard/internal/models"
	"huntboard/internal/tui/components"
	"huntboard/internal/tui/state"
)

// Update processes a message and mutates the model in place. The returned
// command is run by bubbletea; nil means nothing to do.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	var cmd tea.Cmd
	if m.EventChan != nil && !m.SubscriptionStarted {
		m.SubscriptionStarted = true
		cmd = m.subscribeToEvents()
	}

	// Forms consume every message type, not just keys, so huh can drive
	// cursor blinks and field transitions.
	if m.UiState.Mode() == state.FormMode {
		return m, tea.Batch(cmd, m.updateForm(msg))
	}

	switch msg := msg.(type) {
	case RefreshMsg:
		slog.Debug("Refreshing board", "event", msg.Event.Type, "seq", msg.Event.SequenceID)
		return m, tea.Batch(cmd, m.loadBoardCmd(), m.subscribeToEvents())

	case boardLoadedMsg:
		m.applyBoardSnapshot(msg.apps)
		return m, cmd

	case boardLoadFailedMsg:
		slog.Error("Error loading applications", "error", msg.err)
		m.NotificationState.Add(state.LevelError, "Failed to load board")
		return m, cmd

	case placementSavedMsg:
		return m, tea.Batch(cmd, m.loadBoardCmd())

	case placementSaveFailedMsg:
		slog.Error("Error saving move", "id", msg.id, "error", msg.err)
		m.AppState.ApplyPlacement(msg.id, msg.restore)
		m.selectApplication(msg.id)
		m.NotificationState.Add(state.LevelError, "Failed to save move")
		return m, cmd

	case tea.KeyMsg:
		return m, tea.Batch(cmd, m.handleKey(msg))

	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.NotificationState.SetWindowSize(msg.Width, msg.Height)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
		return m, cmd
	}

	return m, cmd
}

// handleKey routes key presses to the handler for the current mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.GrabMode:
		return m.handleGrabMode(msg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirmMode(msg)
	case state.DiscardConfirmMode:
		return m.handleDiscardConfirmMode(msg)
	case state.DetailMode:
		return m.handleDetailMode(msg)
	case state.HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// applyBoardSnapshot swaps in a fresh load of the board. If a grab is in
// flight the preview is re-applied on top of the new data, and the gesture
// is cancelled outright when the carried card no longer exists.
func (m *Model) applyBoardSnapshot(apps []*models.Application) {
	m.AppState.SetApplications(apps)

	if sess, ok := m.Drag.Session(); ok {
		app := m.AppState.Find(sess.ApplicationID)
		if app == nil {
			m.Drag.Cancel()
			m.UiState.SetMode(state.NormalMode)
			m.NotificationState.Add(state.LevelWarning, "The card being moved was deleted")
		} else if sess.PreviewStatus != app.Status {
			m.AppState.ApplyPlacement(sess.ApplicationID, models.Placement{
				Status:   sess.PreviewStatus,
				OrderKey: app.OrderKey,
			})
		}
	}

	m.clampSelection()
	m.UiState.EnsureCardVisible(
		m.SelectedStatus(),
		m.UiState.SelectedCard(),
		components.MaxVisibleCards(m.UiState.ContentHeight()),
	)
}
