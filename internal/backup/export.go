package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"huntboard/internal/board"
	"huntboard/internal/models"
	"huntboard/internal/user"
)

// Reader is the slice of the data layer export needs.
type Reader interface {
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
}

// Export writes a snapshot of the whole board to w, column by column in
// display order. It returns the number of records written.
func Export(ctx context.Context, store Reader, w io.Writer) (int, error) {
	apps, err := store.GetAllApplications(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load board: %w", err)
	}

	env := Envelope{
		Version:      Version,
		ExportedAt:   time.Now().UTC(),
		ExportedBy:   user.CurrentUsername(),
		Applications: make([]Record, 0, len(apps)),
	}
	for _, status := range models.AllStatuses() {
		for _, app := range board.InColumn(status, apps) {
			env.Applications = append(env.Applications, toRecord(app))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return len(env.Applications), nil
}
