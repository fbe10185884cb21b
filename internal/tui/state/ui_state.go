package state

import "huntboard/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode         Mode = iota // Default navigation mode
	GrabMode                       // Carrying a card to a new position
	FormMode                       // Full application form with huh
	DeleteConfirmMode              // Confirming application deletion
	DiscardConfirmMode             // Confirming discard of form changes
	DetailMode                     // Full-detail view of one application
	HelpMode                       // Displaying help screen
)

// DiscardContext tracks information for discard confirmation dialogs.
// It stores the mode to return to if the user cancels, and a context-specific message.
type DiscardContext struct {
	SourceMode Mode   // The mode to return to if user cancels discard (N/ESC)
	Message    string // Context-specific message (e.g., "Discard application?")
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the selected column in board order
	selectedColumn int

	// selectedCard is the index of the selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// cardScrollOffsets tracks the vertical scroll offset for each column
	cardScrollOffsets map[models.Status]int

	// discardContext holds context for discard confirmation dialogs
	discardContext *DiscardContext
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		cardScrollOffsets: make(map[models.Status]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedCard returns the index of the currently selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board columns.
// This is terminal height minus the title line and status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many columns fit in the terminal width.
//
// Column layout:
//   - Content width: 34 characters
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between columns)
//   - Total per column: 38 characters
//
// The calculation reserves 4 characters for margins and scroll indicators,
// and ensures at least 1 column is always visible.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const columnWidth = 38  // 34 content + 2 border + 2 spacing
	const reservedWidth = 4 // margins and scroll indicators

	availableWidth := s.width - reservedWidth

	s.viewportSize = max(1, availableWidth/columnWidth)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is visible.
// This should be called after navigation or when the selection changes.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	// If selection is off-screen to the left, scroll left
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}

	// If selection is off-screen to the right, scroll right
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// DiscardContext returns the current discard context.
func (s *UIState) DiscardContext() *DiscardContext {
	return s.discardContext
}

// SetDiscardContext updates the discard context.
func (s *UIState) SetDiscardContext(ctx *DiscardContext) {
	s.discardContext = ctx
}

// ClearDiscardContext resets the discard context to nil.
func (s *UIState) ClearDiscardContext() {
	s.discardContext = nil
}

// CardScrollOffset returns the vertical scroll offset for a column.
// Returns 0 if the column has no scroll offset set.
func (s *UIState) CardScrollOffset(status models.Status) int {
	if offset, ok := s.cardScrollOffsets[status]; ok {
		return offset
	}
	return 0
}

// SetCardScrollOffset updates the vertical scroll offset for a column.
func (s *UIState) SetCardScrollOffset(status models.Status, offset int) {
	s.cardScrollOffsets[status] = max(0, offset)
}

// EnsureCardVisible adjusts the scroll offset so the selected card is visible.
// This should be called after card navigation within a column.
//
// Parameters:
//   - status: the column containing the card
//   - selectedIdx: index of the selected card within the column
//   - visibleCount: number of cards that can be displayed at once
func (s *UIState) EnsureCardVisible(status models.Status, selectedIdx int, visibleCount int) {
	offset := s.CardScrollOffset(status)

	// If selection is above visible area, scroll up
	if selectedIdx < offset {
		s.cardScrollOffsets[status] = selectedIdx
	}

	// If selection is below visible area, scroll down
	if selectedIdx >= offset+visibleCount {
		s.cardScrollOffsets[status] = selectedIdx - visibleCount + 1
	}
}
