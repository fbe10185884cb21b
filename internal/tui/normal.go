package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"huntboard/internal/models"
	"huntboard/internal/tui/components"
	"huntboard/internal/tui/huhforms"
	"huntboard/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m *Model) handleNormalMode(msg tea.KeyMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m.handleQuit()
	case km.ShowHelp:
		return m.handleShowHelp()
	case km.AddApplication:
		return m.handleAddApplication()
	case km.EditApplication:
		return m.handleEditApplication()
	case km.ViewApplication:
		return m.handleViewApplication()
	case km.DeleteApplication:
		return m.handleDeleteApplication()
	case km.Grab:
		return m.handleGrab()
	case km.Refresh:
		return m.loadBoardCmd()
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.NextCard, "down":
		return m.handleNavigateDown()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	}

	return nil
}

// handleQuit exits the application.
func (m *Model) handleQuit() tea.Cmd {
	return tea.Quit
}

// handleShowHelp shows the help screen.
func (m *Model) handleShowHelp() tea.Cmd {
	m.UiState.SetMode(state.HelpMode)
	return nil
}

// handleNavigateLeft moves selection to the previous column.
func (m *Model) handleNavigateLeft() tea.Cmd {
	if m.UiState.SelectedColumn() > 0 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
	}
	return nil
}

// handleNavigateRight moves selection to the next column.
func (m *Model) handleNavigateRight() tea.Cmd {
	if m.UiState.SelectedColumn() < len(models.AllStatuses())-1 {
		m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
		m.UiState.SetSelectedCard(0)
		m.UiState.EnsureSelectionVisible(m.UiState.SelectedColumn())
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
	}
	return nil
}

// handleNavigateUp moves selection to the previous card.
func (m *Model) handleNavigateUp() tea.Cmd {
	if m.UiState.SelectedCard() > 0 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() - 1)
		m.UiState.EnsureCardVisible(
			m.SelectedStatus(),
			m.UiState.SelectedCard(),
			components.MaxVisibleCards(m.UiState.ContentHeight()),
		)
	} else {
		m.NotificationState.Add(state.LevelInfo, "Already at the first application")
	}
	return nil
}

// handleNavigateDown moves selection to the next card.
func (m *Model) handleNavigateDown() tea.Cmd {
	column := m.CurrentColumn()
	if len(column) > 0 && m.UiState.SelectedCard() < len(column)-1 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
		m.UiState.EnsureCardVisible(
			m.SelectedStatus(),
			m.UiState.SelectedCard(),
			components.MaxVisibleCards(m.UiState.ContentHeight()),
		)
	} else if len(column) > 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last application")
	}
	return nil
}

// handleAddApplication opens an empty application form.
func (m *Model) handleAddApplication() tea.Cmd {
	m.FormState.Clear()
	m.FormState.Status = string(m.SelectedStatus())

	m.FormState.Form = huhforms.CreateApplicationForm(
		&m.FormState.Company,
		&m.FormState.Role,
		&m.FormState.URL,
		&m.FormState.Location,
		&m.FormState.Salary,
		&m.FormState.Notes,
		&m.FormState.Status,
		true,
		&m.FormState.Confirm,
	).WithTheme(huhforms.CreateHuntboardTheme(m.Config.ColorScheme))
	m.FormState.Snapshot()
	m.UiState.SetMode(state.FormMode)
	return m.FormState.Form.Init()
}

// handleEditApplication opens the form pre-filled with the selected
// application.
func (m *Model) handleEditApplication() tea.Cmd {
	app := m.CurrentApplication()
	if app == nil {
		m.NotificationState.Add(state.LevelError, "No application selected to edit")
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	detail, err := m.Svc.GetApplication(ctx, app.ID)
	if err != nil {
		slog.Error("Error loading application", "id", app.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Error loading application")
		return nil
	}

	m.FormState.Clear()
	m.FormState.EditingID = detail.ID
	m.FormState.Company = detail.Company
	m.FormState.Role = detail.Role
	m.FormState.URL = detail.URL
	m.FormState.Location = detail.Location
	m.FormState.Salary = detail.Salary
	m.FormState.Notes = detail.Notes
	m.FormState.Status = string(detail.Status)

	m.FormState.Form = huhforms.CreateApplicationForm(
		&m.FormState.Company,
		&m.FormState.Role,
		&m.FormState.URL,
		&m.FormState.Location,
		&m.FormState.Salary,
		&m.FormState.Notes,
		&m.FormState.Status,
		false,
		&m.FormState.Confirm,
	).WithTheme(huhforms.CreateHuntboardTheme(m.Config.ColorScheme))
	m.FormState.Snapshot()
	m.UiState.SetMode(state.FormMode)
	return m.FormState.Form.Init()
}

// handleViewApplication opens the read-only detail view.
func (m *Model) handleViewApplication() tea.Cmd {
	if m.CurrentApplication() == nil {
		m.NotificationState.Add(state.LevelError, "No application selected to view")
		return nil
	}
	m.UiState.SetMode(state.DetailMode)
	return nil
}

// handleDeleteApplication asks for confirmation before deleting.
func (m *Model) handleDeleteApplication() tea.Cmd {
	if m.CurrentApplication() == nil {
		m.NotificationState.Add(state.LevelError, "No application selected to delete")
		return nil
	}
	m.UiState.SetMode(state.DeleteConfirmMode)
	return nil
}

// handleGrab picks up the selected card and enters GrabMode.
func (m *Model) handleGrab() tea.Cmd {
	app := m.CurrentApplication()
	if app == nil {
		m.NotificationState.Add(state.LevelError, "No application selected to move")
		return nil
	}
	if err := m.Drag.Start(app); err != nil {
		slog.Error("Error starting move", "id", app.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "A move is already in progress")
		return nil
	}
	m.UiState.SetMode(state.GrabMode)
	return nil
}
