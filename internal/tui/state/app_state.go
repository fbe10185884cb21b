package state

import (
	"huntboard/internal/board"
	"huntboard/internal/models"
)

// AppState manages the application's domain data: the full set of job
// applications loaded from the database. Columns are always derived from
// this set with the board sorter, so a placement change in one place is
// reflected everywhere on the next render.
type AppState struct {
	// applications contains every record on the board, in no particular order
	applications []*models.Application
}

// NewAppState creates a new AppState with the provided records.
func NewAppState(applications []*models.Application) *AppState {
	if applications == nil {
		applications = []*models.Application{}
	}
	return &AppState{applications: applications}
}

// Applications returns the working set.
// Note: This returns the internal slice - modifications will affect state.
func (s *AppState) Applications() []*models.Application {
	return s.applications
}

// SetApplications replaces the entire working set.
// This should be called after reloading from the database.
func (s *AppState) SetApplications(applications []*models.Application) {
	if applications == nil {
		applications = []*models.Application{}
	}
	s.applications = applications
}

// Column returns the applications displayed in one pipeline column, in
// display order.
func (s *AppState) Column(status models.Status) []*models.Application {
	return board.InColumn(status, s.applications)
}

// TotalCount returns the number of applications across all columns.
func (s *AppState) TotalCount() int {
	return len(s.applications)
}

// Find returns the application with the given ID, or nil.
func (s *AppState) Find(id int) *models.Application {
	for _, app := range s.applications {
		if app.ID == id {
			return app
		}
	}
	return nil
}

// Remove deletes the application with the given ID from the working set.
// This should be called after a successful database delete.
func (s *AppState) Remove(id int) {
	for i, app := range s.applications {
		if app.ID == id {
			s.applications = append(s.applications[:i], s.applications[i+1:]...)
			return
		}
	}
}

// ApplyPlacement moves an application to the given column and order key in
// the working set only. Drag previews, optimistic commits, and reverts all
// go through here; nothing is persisted.
func (s *AppState) ApplyPlacement(id int, placement models.Placement) {
	app := s.Find(id)
	if app == nil {
		return
	}
	app.Status = placement.Status
	app.OrderKey = placement.OrderKey
}

// IndexOf returns the display index of an application within its column,
// or -1 if it is not in that column.
func (s *AppState) IndexOf(status models.Status, id int) int {
	for i, app := range s.Column(status) {
		if app.ID == id {
			return i
		}
	}
	return -1
}
