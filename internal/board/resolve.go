package board

import (
	"huntboard/internal/models"
	"huntboard/internal/order"
)

// Resolution is the outcome of resolving a drop: the placement the moved
// application should take, and whether that placement changes anything
// relative to where the application sat before the gesture began.
type Resolution struct {
	Placement     models.Placement
	StatusChanged bool
	OrderChanged  bool
}

// NoOp reports whether the resolution leaves the application exactly where
// it already was. Callers must skip persistence for no-op resolutions.
func (r Resolution) NoOp() bool {
	return !r.StatusChanged && !r.OrderChanged
}

// Resolve maps a drop of moved onto target into a concrete placement. moved
// carries the pre-gesture status and order key; apps is the current board
// snapshot. The resolver removes moved from the target column before any
// index math, so a preview that visually relocated the card cannot skew the
// result.
func Resolve(moved *models.Application, target Target, apps []*models.Application) (Resolution, error) {
	switch t := target.(type) {
	case ColumnTarget:
		if !t.Status.Valid() {
			return Resolution{}, ErrInvalidStatus
		}
		siblings := siblingsWithout(t.Status, apps, moved.ID)
		return place(moved, t.Status, len(siblings), siblings), nil

	case CardTarget:
		if t.ID == moved.ID {
			// Dropping a card back onto itself.
			return Resolution{Placement: moved.Placement()}, nil
		}
		sibling := findByID(apps, t.ID)
		if sibling == nil {
			return Resolution{}, ErrTargetNotFound
		}
		siblings := siblingsWithout(sibling.Status, apps, moved.ID)
		idx := indexOf(siblings, sibling.ID)
		if insertAfter(moved, sibling, t.Dir, idx == len(siblings)-1) {
			idx++
		}
		return place(moved, sibling.Status, idx, siblings), nil
	}

	return Resolution{}, ErrTargetNotFound
}

// insertAfter decides which side of the sibling the moved card lands on.
func insertAfter(moved, sibling *models.Application, dir Direction, siblingIsLast bool) bool {
	switch dir {
	case DirectionBefore:
		return false
	case DirectionAfter:
		return true
	}

	if moved.Status == sibling.Status {
		// Within a column the card crosses the sibling: a card that sat
		// above it lands below, one that sat below lands above. Comparing
		// pre-gesture values keeps the rule stable even when a drag preview
		// already relocated the card in the snapshot.
		return less(moved, sibling)
	}

	// From another column the card lands above the sibling, or below it
	// when the sibling is the last card in the column.
	return siblingIsLast
}

// place computes the final placement for moved entering the column at idx,
// where siblings is the column's display order without moved itself.
func place(moved *models.Application, status models.Status, idx int, siblings []*models.Application) Resolution {
	var before, after string
	n := len(siblings)
	switch {
	case n == 0:
		// Empty column, unbounded on both sides.
	case idx <= 0:
		after = siblings[0].OrderKey
	case idx >= n:
		before = siblings[n-1].OrderKey
	default:
		before = siblings[idx-1].OrderKey
		after = siblings[idx].OrderKey
	}

	if status == moved.Status && inSlot(moved.OrderKey, before, after) {
		// The card already occupies this slot; keep its key so the drop
		// stays a pure no-op.
		return Resolution{Placement: moved.Placement()}
	}

	var key string
	if before != "" && after != "" && before >= after {
		// Degenerate neighbor keys, e.g. duplicates in imported data.
		key = order.AtStart(after)
	} else {
		key = order.Between(before, after)
	}

	return Resolution{
		Placement:     models.Placement{Status: status, OrderKey: key},
		StatusChanged: status != moved.Status,
		OrderChanged:  key != moved.OrderKey,
	}
}

// inSlot reports whether key falls strictly inside the open interval
// (before, after), where an empty bound is unbounded. An empty key is never
// in a slot; it marks a legacy row that still needs a real key.
func inSlot(key, before, after string) bool {
	if key == "" {
		return false
	}
	return (before == "" || before < key) && (after == "" || key < after)
}

func siblingsWithout(status models.Status, apps []*models.Application, movedID int) []*models.Application {
	column := InColumn(status, apps)
	siblings := make([]*models.Application, 0, len(column))
	for _, app := range column {
		if app.ID != movedID {
			siblings = append(siblings, app)
		}
	}
	return siblings
}

func findByID(apps []*models.Application, id int) *models.Application {
	for _, app := range apps {
		if app.ID == id {
			return app
		}
	}
	return nil
}

func indexOf(apps []*models.Application, id int) int {
	for i, app := range apps {
		if app.ID == id {
			return i
		}
	}
	return -1
}
