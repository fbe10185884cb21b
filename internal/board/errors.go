package board

import "errors"

var (
	// ErrTargetNotFound means the card a drop referenced is no longer in the
	// snapshot. Callers fall back to the end of the best known column rather
	// than losing the move.
	ErrTargetNotFound = errors.New("drop target not found")

	// ErrInvalidStatus means a drop named a column outside the known set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrDragInProgress means a new gesture started before the previous one
	// ended.
	ErrDragInProgress = errors.New("drag already in progress")
)
