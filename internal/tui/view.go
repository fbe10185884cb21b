package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"huntboard/internal/models"
	"huntboard/internal/tui/components"
	"huntboard/internal/tui/layers"
	"huntboard/internal/tui/notifications"
	"huntboard/internal/tui/state"
	"huntboard/internal/tui/theme"
)

// View renders the whole screen. The board is always the base layer; the
// current mode may stack a modal on top of it, and notifications float above
// everything in the top-right corner.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Nothing sensible to draw before the first WindowSizeMsg.
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBoard()),
	}

	if modal := m.renderModalLayer(); modal != nil {
		stack = append(stack, modal)
	}

	stack = append(stack, m.NotificationState.GetLayers(notifications.RenderFromState)...)

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderModalLayer returns the overlay for the current mode, nil when the
// board is shown bare.
func (m *Model) renderModalLayer() *lipgloss.Layer {
	switch m.UiState.Mode() {
	case state.FormMode:
		return m.renderFormLayer()
	case state.DeleteConfirmMode:
		return m.renderDeleteConfirmLayer()
	case state.DiscardConfirmMode:
		return m.renderDiscardConfirmLayer()
	case state.DetailMode:
		return m.renderDetailLayer()
	case state.HelpMode:
		return m.renderHelpLayer()
	}
	return nil
}

// renderBoard renders the base screen: title, the visible columns side by
// side, and the status bar pinned to the bottom.
func (m *Model) renderBoard() string {
	title := components.TitleStyle.Render("huntboard")

	statuses := models.AllStatuses()
	endIdx := min(m.UiState.ViewportOffset()+m.UiState.ViewportSize(), len(statuses))
	visible := statuses[m.UiState.ViewportOffset():endIdx]

	columnHeight := m.UiState.ContentHeight()
	grabbedID := m.GrabbedID()

	rendered := make([]string, 0, len(visible))
	for i, status := range visible {
		columnIdx := m.UiState.ViewportOffset() + i
		selected := columnIdx == m.UiState.SelectedColumn()
		selectedIdx := -1
		if selected {
			selectedIdx = m.UiState.SelectedCard()
		}
		rendered = append(rendered, components.RenderColumn(
			status,
			m.AppState.Column(status),
			selected,
			selectedIdx,
			grabbedID,
			columnHeight,
			m.UiState.CardScrollOffset(status),
		))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	// Horizontal scroll hints when columns run off either edge.
	var hints string
	if m.UiState.ViewportOffset() > 0 {
		hints += components.IndicatorStyle.Render("◀ ")
	}
	if endIdx < len(statuses) {
		hints += components.IndicatorStyle.Render(" ▶")
	}
	header := title
	if hints != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", hints)
	}

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:          m.UiState.Width(),
		TotalCount:     m.AppState.TotalCount(),
		GrabbedCompany: m.grabbedCompany(),
		DropKey:        m.Config.KeyMappings.Drop,
		CancelKey:      m.Config.KeyMappings.Cancel,
	})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		board,
		"",
		statusBar,
	)
}

// grabbedCompany names the card being carried, empty when idle.
func (m *Model) grabbedCompany() string {
	id := m.GrabbedID()
	if id == 0 {
		return ""
	}
	if app := m.AppState.Find(id); app != nil {
		return app.Company
	}
	return ""
}

// renderFormLayer shows the application form in a centered box.
func (m *Model) renderFormLayer() *lipgloss.Layer {
	if m.FormState.Form == nil {
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	formTitle := titleStyle.Render("New Application")
	if m.FormState.EditingID != 0 {
		formTitle = titleStyle.Render("Edit Application")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	help := helpStyle.Render(fmt.Sprintf("%s save · %s discard", m.Config.KeyMappings.SaveForm, m.Config.KeyMappings.Cancel))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		formTitle,
		"",
		m.FormState.Form.View(),
		"",
		help,
	)

	box := components.FormBoxStyle.
		Width(min(m.UiState.Width()*2/3, 80)).
		Render(content)

	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDeleteConfirmLayer shows the y/n prompt over the board.
func (m *Model) renderDeleteConfirmLayer() *lipgloss.Layer {
	app := m.CurrentApplication()
	if app == nil {
		return nil
	}
	box := components.DeleteConfirmBoxStyle.
		Width(min(m.UiState.Width()-4, 50)).
		Render(components.RenderDeleteConfirm(app))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDiscardConfirmLayer asks before throwing away unsaved form edits.
func (m *Model) renderDiscardConfirmLayer() *lipgloss.Layer {
	message := "Discard changes?"
	if ctx := m.UiState.DiscardContext(); ctx != nil && ctx.Message != "" {
		message = ctx.Message
	}

	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	content := components.TitleStyle.Render(message) + "\n\n" + hintStyle.Render("y to discard · n to keep editing")

	box := components.DiscardConfirmBoxStyle.
		Width(min(m.UiState.Width()-4, 50)).
		Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderDetailLayer shows the full record for the selected application.
func (m *Model) renderDetailLayer() *lipgloss.Layer {
	app := m.CurrentApplication()
	if app == nil {
		return nil
	}

	boxWidth := min(m.UiState.Width()*3/4, 90)
	content := components.RenderDetail(components.DetailProps{
		App:   app,
		Width: boxWidth - 6, // border and padding
	})

	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	content += "\n\n" + hintStyle.Render("esc to close · e to edit")

	box := components.DetailBoxStyle.Width(boxWidth).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// renderHelpLayer lists the active key bindings.
func (m *Model) renderHelpLayer() *lipgloss.Layer {
	km := m.Config.KeyMappings

	viewKey := km.ViewApplication
	if viewKey == " " {
		viewKey = "space"
	}

	lines := []string{
		components.TitleStyle.Render("huntboard - keys"),
		"",
		"APPLICATIONS",
		fmt.Sprintf("  %-7s add", km.AddApplication),
		fmt.Sprintf("  %-7s edit", km.EditApplication),
		fmt.Sprintf("  %-7s view details", viewKey),
		fmt.Sprintf("  %-7s delete", km.DeleteApplication),
		"",
		"MOVING",
		fmt.Sprintf("  %-7s grab the selected card", km.Grab),
		fmt.Sprintf("  %-7s drop it at the cursor", km.Drop),
		fmt.Sprintf("  %-7s cancel the move", km.Cancel),
		"",
		"NAVIGATION",
		fmt.Sprintf("  %s/%s     previous / next column", km.PrevColumn, km.NextColumn),
		fmt.Sprintf("  %s/%s     previous / next card", km.PrevCard, km.NextCard),
		"",
		"OTHER",
		fmt.Sprintf("  %-7s reload the board", km.Refresh),
		fmt.Sprintf("  %-7s this screen", km.ShowHelp),
		fmt.Sprintf("  %-7s quit", km.Quit),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render("press any key to close"),
	}

	box := components.HelpBoxStyle.
		Width(min(m.UiState.Width()-4, 50)).
		Render(strings.Join(lines, "\n"))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
