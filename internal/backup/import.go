package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"huntboard/internal/board"
	"huntboard/internal/models"
	"huntboard/internal/order"
)

// Store is the slice of the data layer import needs.
type Store interface {
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
	ImportApplication(ctx context.Context, app *models.Application) (*models.Application, error)
}

// Stats reports what an import did.
type Stats struct {
	Imported int
	Skipped  int
}

// Import reads a snapshot from r and appends its records to the board.
// Records land at the bottom of their columns in snapshot order, each with a
// freshly generated order key. Records matching an existing application on
// (company, role, url) are skipped. The snapshot is validated in full before
// the first write.
func Import(ctx context.Context, store Store, r io.Reader) (Stats, error) {
	var stats Stats

	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return stats, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if env.Version > Version {
		return stats, fmt.Errorf("%w: snapshot is version %d, this build reads up to %d",
			ErrUnsupportedVersion, env.Version, Version)
	}
	if env.Version < 1 {
		return stats, fmt.Errorf("%w: missing version", ErrInvalidSnapshot)
	}

	// Validate every record before touching the store
	incoming := make([]*models.Application, 0, len(env.Applications))
	for i, rec := range env.Applications {
		status, err := models.ParseStatus(rec.Status)
		if err != nil {
			return stats, fmt.Errorf("%w: record %d: %v", ErrInvalidSnapshot, i, err)
		}
		if strings.TrimSpace(rec.Company) == "" {
			return stats, fmt.Errorf("%w: record %d: company is empty", ErrInvalidSnapshot, i)
		}
		if strings.TrimSpace(rec.Role) == "" {
			return stats, fmt.Errorf("%w: record %d: role is empty", ErrInvalidSnapshot, i)
		}
		incoming = append(incoming, toModel(rec, status))
	}

	existing, err := store.GetAllApplications(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to load board: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, app := range existing {
		seen[identity(app)] = true
	}

	for _, status := range models.AllStatuses() {
		// Tail key of the existing column; imports append below it
		tail := ""
		if column := board.InColumn(status, existing); len(column) > 0 {
			tail = column[len(column)-1].OrderKey
		}

		for _, app := range board.InColumn(status, incoming) {
			key := identity(app)
			if seen[key] {
				stats.Skipped++
				continue
			}

			tail = order.AtEnd(tail)
			app.OrderKey = tail
			if _, err := store.ImportApplication(ctx, app); err != nil {
				return stats, fmt.Errorf("failed to import %q at %q: %w", app.Company, app.Role, err)
			}
			seen[key] = true
			stats.Imported++
		}
	}

	return stats, nil
}

// identity is the duplicate-detection key. Case and surrounding whitespace
// are ignored so re-imports survive casual edits to the snapshot.
func identity(app *models.Application) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return norm(app.Company) + "\x00" + norm(app.Role) + "\x00" + norm(app.URL)
}
