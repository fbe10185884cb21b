package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"huntboard/internal/board"
)

// loadBoardCmd fetches every application in board order off the UI thread.
func (m *Model) loadBoardCmd() tea.Cmd {
	svc := m.Svc
	ctx := m.Ctx
	return func() tea.Msg {
		loadCtx, cancel := context.WithTimeout(ctx, dbTimeout)
		defer cancel()

		apps, err := svc.ListApplications(loadCtx)
		if err != nil {
			return boardLoadFailedMsg{err: err}
		}
		return boardLoadedMsg{apps: apps}
	}
}

// savePlacementCmd persists a committed drop. The board already shows the
// card in its new spot; on failure the message carries the placement to
// put it back.
func (m *Model) savePlacementCmd(outcome board.Outcome) tea.Cmd {
	svc := m.Svc
	ctx := m.Ctx
	return func() tea.Msg {
		saveCtx, cancel := context.WithTimeout(ctx, dbTimeout)
		defer cancel()

		if err := svc.SavePlacement(saveCtx, outcome.ApplicationID, outcome.Placement); err != nil {
			return placementSaveFailedMsg{
				id:      outcome.ApplicationID,
				restore: outcome.Restore,
				err:     err,
			}
		}
		return placementSavedMsg{id: outcome.ApplicationID}
	}
}

// subscribeToEvents blocks on the daemon event channel and converts the next
// event into a RefreshMsg. The update loop re-issues it after each receive.
func (m *Model) subscribeToEvents() tea.Cmd {
	if m.EventChan == nil {
		return nil
	}
	ch := m.EventChan
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
