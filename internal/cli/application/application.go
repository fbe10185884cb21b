// Package application implements the application subcommands of the
// huntboard CLI. Every command supports --json and --quiet so scripts and
// agents can drive the board without the TUI.
package application

import (
	"huntboard/internal/models"
)

// applicationJSON shapes an application for JSON output
func applicationJSON(app *models.Application) map[string]interface{} {
	return map[string]interface{}{
		"id":         app.ID,
		"company":    app.Company,
		"role":       app.Role,
		"url":        app.URL,
		"location":   app.Location,
		"salary":     app.Salary,
		"notes":      app.Notes,
		"status":     app.Status,
		"order_key":  app.OrderKey,
		"created_at": app.CreatedAt,
		"updated_at": app.UpdatedAt,
	}
}
