package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"huntboard/internal/tui/state"
)

// handleDeleteConfirmMode processes the y/n prompt before deleting the
// selected application. Anything other than an explicit yes keeps it.
func (m *Model) handleDeleteConfirmMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDelete()
	case "n", "N", m.Config.KeyMappings.Cancel, "q":
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return nil
}

// confirmDelete removes the selected application from the store and the
// local board.
func (m *Model) confirmDelete() tea.Cmd {
	app := m.CurrentApplication()
	m.UiState.SetMode(state.NormalMode)
	if app == nil {
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.Svc.DeleteApplication(ctx, app.ID); err != nil {
		slog.Error("Error deleting application", "id", app.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to delete application")
		return nil
	}

	m.AppState.Remove(app.ID)
	m.clampSelection()
	m.NotificationState.Add(state.LevelInfo, "Application deleted")
	return nil
}

// handleDiscardConfirmMode processes the y/n prompt shown when closing a
// form with unsaved changes. Yes drops the edits; no returns to the form.
func (m *Model) handleDiscardConfirmMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		m.closeForm()
		return tea.ClearScreen
	case "n", "N", m.Config.KeyMappings.Cancel:
		sourceMode := state.FormMode
		if ctx := m.UiState.DiscardContext(); ctx != nil {
			sourceMode = ctx.SourceMode
		}
		m.UiState.ClearDiscardContext()
		m.UiState.SetMode(sourceMode)
		return nil
	}
	return nil
}

// handleDetailMode processes keys while the detail view is open. Edit jumps
// straight into the form; everything that means "close" returns to the board.
func (m *Model) handleDetailMode(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.EditApplication:
		m.UiState.SetMode(state.NormalMode)
		return m.handleEditApplication()
	case km.Cancel, km.ViewApplication, km.Quit, "enter":
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return nil
}

// handleHelpMode closes the help screen on any key.
func (m *Model) handleHelpMode(msg tea.KeyMsg) tea.Cmd {
	m.UiState.SetMode(state.NormalMode)
	return nil
}
