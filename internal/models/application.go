package models

import "time"

// Application is a tracked job application.
type Application struct {
	ID        int
	Company   string
	Role      string
	URL       string
	Location  string
	Salary    string
	Notes     string
	Status    Status
	OrderKey  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Placement is an application's position on the board: the column it sits
// in and its fractional order key within that column.
type Placement struct {
	Status   Status
	OrderKey string
}

// Placement returns the application's current board position.
func (a *Application) Placement() Placement {
	return Placement{Status: a.Status, OrderKey: a.OrderKey}
}
