package tui

import (
	tea "charm.land/bubbletea/v2"

	"huntboard/internal/board"
	"huntboard/internal/models"
	"huntboard/internal/tui/components"
	"huntboard/internal/tui/state"
)

// ============================================================================
// GRAB MODE HANDLERS
// ============================================================================

// handleGrabMode dispatches key events while a card is being carried.
// Navigation moves the drop cursor; the carried card follows column changes
// as a preview and nothing touches the database until the drop.
func (m *Model) handleGrabMode(msg tea.KeyMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Drop:
		return m.handleDrop()
	case km.Cancel, "ctrl+c":
		return m.handleCancelGrab()
	case km.PrevColumn, "left":
		return m.handleHoverColumn(-1)
	case km.NextColumn, "right":
		return m.handleHoverColumn(1)
	case km.NextCard, "down":
		return m.handleHoverCard(1)
	case km.PrevCard, "up":
		return m.handleHoverCard(-1)
	}

	return nil
}

// handleHoverColumn moves the gesture into the adjacent column. The carried
// card is re-displayed there immediately, keeping its order key so it sorts
// among its new neighbors.
func (m *Model) handleHoverColumn(delta int) tea.Cmd {
	statuses := models.AllStatuses()
	next := m.UiState.SelectedColumn() + delta
	if next < 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first column")
		return nil
	}
	if next >= len(statuses) {
		m.NotificationState.Add(state.LevelInfo, "Already at the last column")
		return nil
	}

	status := statuses[next]
	displayStatus, changed := m.Drag.Over(board.ColumnTarget{Status: status}, m.AppState.Applications())
	if changed {
		if app := m.AppState.Find(m.GrabbedID()); app != nil {
			m.AppState.ApplyPlacement(app.ID, models.Placement{
				Status:   displayStatus,
				OrderKey: app.OrderKey,
			})
		}
	}

	m.UiState.SetSelectedColumn(next)
	m.UiState.EnsureSelectionVisible(next)

	// Keep the cursor on the carried card wherever it sorted in.
	idx := m.AppState.IndexOf(status, m.GrabbedID())
	if idx < 0 {
		idx = 0
	}
	m.UiState.SetSelectedCard(idx)
	m.UiState.EnsureCardVisible(status, idx, components.MaxVisibleCards(m.UiState.ContentHeight()))
	return nil
}

// handleHoverCard moves the drop cursor within the current column.
func (m *Model) handleHoverCard(delta int) tea.Cmd {
	column := m.CurrentColumn()
	if len(column) == 0 {
		return nil
	}

	next := m.UiState.SelectedCard() + delta
	if next < 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first application")
		return nil
	}
	if next >= len(column) {
		m.NotificationState.Add(state.LevelInfo, "Already at the last application")
		return nil
	}

	m.UiState.SetSelectedCard(next)
	m.UiState.EnsureCardVisible(
		m.SelectedStatus(),
		next,
		components.MaxVisibleCards(m.UiState.ContentHeight()),
	)
	return nil
}

// handleDrop ends the gesture at the cursor. A commit applies the new
// placement immediately and persists it in the background; anything else
// puts the card back where it came from.
func (m *Model) handleDrop() tea.Cmd {
	sess, ok := m.Drag.Session()
	if !ok {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	outcome := m.Drag.Drop(m.dropTarget(sess), m.AppState.Applications())
	m.UiState.SetMode(state.NormalMode)

	if outcome.Kind == board.OutcomeCommit {
		m.AppState.ApplyPlacement(outcome.ApplicationID, outcome.Placement)
		m.selectApplication(outcome.ApplicationID)
		return m.savePlacementCmd(outcome)
	}

	if outcome.RestoreNeeded {
		m.AppState.ApplyPlacement(outcome.ApplicationID, outcome.Restore)
	}
	if outcome.ApplicationID != 0 {
		m.selectApplication(outcome.ApplicationID)
	}
	return nil
}

// dropTarget derives the drop target from the cursor position.
func (m *Model) dropTarget(sess board.Session) board.Target {
	column := m.CurrentColumn()
	if len(column) == 0 {
		return board.ColumnTarget{Status: m.SelectedStatus()}
	}

	idx := min(m.UiState.SelectedCard(), len(column)-1)
	sibling := column[idx]
	if sibling.ID != sess.ApplicationID {
		return board.CardTarget{ID: sibling.ID, Dir: board.DirectionAuto}
	}

	// The cursor sits on the carried card itself. In its original column
	// that is a drop-back-in-place; after a column hover it means "commit
	// exactly where the preview shows it", which is expressed relative to
	// the neighbor the card is displayed against.
	if sess.PreviewStatus == sess.Original.Status {
		return board.CardTarget{ID: sess.ApplicationID}
	}
	if idx+1 < len(column) {
		return board.CardTarget{ID: column[idx+1].ID, Dir: board.DirectionBefore}
	}
	if idx > 0 {
		return board.CardTarget{ID: column[idx-1].ID, Dir: board.DirectionAfter}
	}
	return board.ColumnTarget{Status: sess.PreviewStatus}
}

// handleCancelGrab abandons the gesture and restores the original placement.
func (m *Model) handleCancelGrab() tea.Cmd {
	outcome := m.Drag.Cancel()
	m.UiState.SetMode(state.NormalMode)

	if outcome.RestoreNeeded {
		m.AppState.ApplyPlacement(outcome.ApplicationID, outcome.Restore)
	}
	if outcome.ApplicationID != 0 {
		m.selectApplication(outcome.ApplicationID)
	}
	return nil
}
