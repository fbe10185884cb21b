// Package board turns a flat list of applications into ordered columns and
// reconciles drag gestures against it. The sorter is the only authority for
// column order; resolving a drop yields a placement value that callers apply
// and persist themselves.
package board

import (
	"sort"

	"huntboard/internal/models"
)

// InColumn returns the applications in status sorted into display order.
func InColumn(status models.Status, apps []*models.Application) []*models.Application {
	column := make([]*models.Application, 0)
	for _, app := range apps {
		if app.Status == status {
			column = append(column, app)
		}
	}

	sort.SliceStable(column, func(i, j int) bool {
		return less(column[i], column[j])
	})

	return column
}

// less is the display-order rule: ascending by order key compared bytewise,
// key ties broken newest-first, and finally by descending id so the order is
// total. Records with an empty order key sort before all keyed records; they
// are legacy rows, not errors, and the first move re-keys them.
func less(a, b *models.Application) bool {
	if a.OrderKey != b.OrderKey {
		return a.OrderKey < b.OrderKey
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// Columns groups every application into its column, each sorted for display.
func Columns(apps []*models.Application) map[models.Status][]*models.Application {
	grouped := make(map[models.Status][]*models.Application, len(models.AllStatuses()))
	for _, status := range models.AllStatuses() {
		grouped[status] = InColumn(status, apps)
	}
	return grouped
}
