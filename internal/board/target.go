package board

import "huntboard/internal/models"

// Direction hints which side of the target card the moved card lands on.
type Direction int

const (
	// DirectionAuto derives the side from board geometry: within a column
	// the card lands on the far side of the sibling relative to where it
	// started, and across columns it lands before the sibling unless the
	// sibling closes out its column.
	DirectionAuto Direction = iota
	DirectionBefore
	DirectionAfter
)

// Target identifies where a drag gesture ended.
type Target interface {
	isTarget()
}

// ColumnTarget is a drop on a column itself rather than on a card, such as
// the empty space below a column's cards. It resolves to the end of that
// column.
type ColumnTarget struct {
	Status models.Status
}

// CardTarget is a drop on a specific card. Dir is DirectionAuto for
// pointer-style gestures; explicit callers like the CLI can force a side.
type CardTarget struct {
	ID  int
	Dir Direction
}

func (ColumnTarget) isTarget() {}
func (CardTarget) isTarget()   {}
