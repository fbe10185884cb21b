package tui

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"huntboard/internal/models"
	applicationservice "huntboard/internal/services/application"
	"huntboard/internal/tui/state"
)

// updateForm drives the application form while FormMode is active. Every
// message is forwarded to huh except ESC, which is intercepted for change
// detection, and the save shortcut, which completes the form directly.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	form := m.FormState.Form
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case m.Config.KeyMappings.Cancel:
			if m.FormState.HasChanges() {
				message := "Discard this application?"
				if m.FormState.EditingID != 0 {
					message = "Discard your edits?"
				}
				m.UiState.SetDiscardContext(&state.DiscardContext{
					SourceMode: state.FormMode,
					Message:    message,
				})
				m.UiState.SetMode(state.DiscardConfirmMode)
				return nil
			}
			m.closeForm()
			return tea.ClearScreen

		case m.Config.KeyMappings.SaveForm:
			m.FormState.Confirm = true
			return m.submitForm()
		}
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.Form = f
	}

	if m.FormState.Form.State == huh.StateCompleted {
		return tea.Batch(cmd, m.submitForm())
	}

	return cmd
}

// submitForm saves the form values and closes the form. A declined confirm
// field discards instead of saving.
func (m *Model) submitForm() tea.Cmd {
	if !m.FormState.Confirm {
		m.closeForm()
		return tea.ClearScreen
	}

	save := m.saveForm
	if m.FormState.EditingID != 0 {
		save = m.saveEdit
	}
	save()

	m.closeForm()
	return tea.Batch(tea.ClearScreen, m.loadBoardCmd())
}

// saveForm creates a new application from the form fields.
func (m *Model) saveForm() {
	ctx, cancel := m.DbContext()
	defer cancel()

	app, err := m.Svc.CreateApplication(ctx, applicationservice.CreateApplicationRequest{
		Company:  strings.TrimSpace(m.FormState.Company),
		Role:     strings.TrimSpace(m.FormState.Role),
		URL:      strings.TrimSpace(m.FormState.URL),
		Location: strings.TrimSpace(m.FormState.Location),
		Salary:   strings.TrimSpace(m.FormState.Salary),
		Notes:    m.FormState.Notes,
		Status:   models.Status(m.FormState.Status),
	})
	if err != nil {
		slog.Error("Error creating application", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to save application")
		return
	}

	m.selectApplication(app.ID)
	m.NotificationState.Add(state.LevelInfo, "Application added")
}

// saveEdit updates the application the form was opened for.
func (m *Model) saveEdit() {
	ctx, cancel := m.DbContext()
	defer cancel()

	company := strings.TrimSpace(m.FormState.Company)
	role := strings.TrimSpace(m.FormState.Role)
	url := strings.TrimSpace(m.FormState.URL)
	location := strings.TrimSpace(m.FormState.Location)
	salary := strings.TrimSpace(m.FormState.Salary)
	notes := m.FormState.Notes

	err := m.Svc.UpdateApplication(ctx, applicationservice.UpdateApplicationRequest{
		ID:       m.FormState.EditingID,
		Company:  &company,
		Role:     &role,
		URL:      &url,
		Location: &location,
		Salary:   &salary,
		Notes:    &notes,
	})
	if err != nil {
		slog.Error("Error updating application", "id", m.FormState.EditingID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to save changes")
		return
	}

	m.NotificationState.Add(state.LevelInfo, "Application updated")
}

// closeForm drops the form and returns to the board.
func (m *Model) closeForm() {
	m.FormState.Clear()
	m.UiState.ClearDiscardContext()
	m.UiState.SetMode(state.NormalMode)
}
