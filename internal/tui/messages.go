package tui

import (
	"huntboard/internal/events"
	"huntboard/internal/models"
)

// RefreshMsg signals that the board should reload from the database,
// carrying the daemon event that triggered it.
type RefreshMsg struct {
	Event events.Event
}

type boardLoadedMsg struct {
	apps []*models.Application
}

type boardLoadFailedMsg struct {
	err error
}

type placementSavedMsg struct {
	id int
}

type placementSaveFailedMsg struct {
	id      int
	restore models.Placement
	err     error
}
