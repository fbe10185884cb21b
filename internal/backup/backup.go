// Package backup moves board data in and out of versioned JSON snapshots.
// Export writes the whole board in display order; import appends records to
// the bottom of their columns with freshly generated order keys, so a
// restored board is always well-ordered regardless of what the snapshot
// carried.
package backup

import (
	"time"

	"huntboard/internal/models"
)

// Version identifies the snapshot envelope layout. Import refuses anything
// newer than it knows how to read.
const Version = 1

// Envelope is the top-level snapshot document.
type Envelope struct {
	Version      int       `json:"version"`
	ExportedAt   time.Time `json:"exported_at"`
	ExportedBy   string    `json:"exported_by,omitempty"`
	Applications []Record  `json:"applications"`
}

// Record is one application in a snapshot. It mirrors models.Application but
// carries json tags; the model stays serialization-free.
type Record struct {
	ID        int       `json:"id,omitempty"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	URL       string    `json:"url,omitempty"`
	Location  string    `json:"location,omitempty"`
	Salary    string    `json:"salary,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	OrderKey  string    `json:"order_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRecord(app *models.Application) Record {
	return Record{
		ID:        app.ID,
		Company:   app.Company,
		Role:      app.Role,
		URL:       app.URL,
		Location:  app.Location,
		Salary:    app.Salary,
		Notes:     app.Notes,
		Status:    string(app.Status),
		OrderKey:  app.OrderKey,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

// toModel converts a snapshot record back to a model. The snapshot's id is
// dropped because the store reassigns ids; its order key survives only long
// enough to sort the incoming column, import replaces it with a fresh one.
func toModel(rec Record, status models.Status) *models.Application {
	return &models.Application{
		Company:   rec.Company,
		Role:      rec.Role,
		URL:       rec.URL,
		Location:  rec.Location,
		Salary:    rec.Salary,
		Notes:     rec.Notes,
		Status:    status,
		OrderKey:  rec.OrderKey,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
