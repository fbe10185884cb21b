package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"huntboard/internal/models"
	"huntboard/internal/tui/theme"
)

// RenderColumn renders a complete pipeline column with its header and cards
// This is a pure, reusable component that composes individual card components
//
// Layout:
//
//	{Stage Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// Parameters:
//   - status: The pipeline stage this column displays
//   - apps: Applications in this column, in display order
//   - selected: Whether this column is currently selected
//   - selectedIdx: Index of selected card in this column (-1 if not this column)
//   - grabbedID: ID of the card being carried (0 if none)
//   - height: Fixed height for the column (0 for auto)
//   - scrollOffset: Index of first visible card
func RenderColumn(status models.Status, apps []*models.Application, selected bool, selectedIdx int, grabbedID int, height int, scrollOffset int) string {
	// Render column header with application count
	header := fmt.Sprintf("%s (%d)", status.Display(), len(apps))
	content := TitleStyle.Render(header) + "\n"

	// Render all cards in the column or show empty state
	if len(apps) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0)
		content += emptyStyle.Render("No applications")
	} else {
		// Column overhead breakdown:
		// - Border + Padding: 3 lines (top border + bottom padding + bottom border)
		// - Header: 1 line (stage name and count)
		// - Top indicator: 1 line (empty line or "▲ more above")
		const columnOverhead = 5
		availableHeight := height - columnOverhead
		maxVisibleCards := max(availableHeight/CardHeight, 1)

		// Always reserve space for top indicator
		if scrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n" // Empty line to maintain consistent spacing
		}

		// Calculate visible card range
		endIdx := min(scrollOffset+maxVisibleCards, len(apps))
		visibleApps := apps[scrollOffset:endIdx]

		// Render visible cards (no separators - cards are adjacent)
		for i, app := range visibleApps {
			actualIdx := scrollOffset + i
			isSelected := selected && actualIdx == selectedIdx
			content += RenderCard(app, isSelected, app.ID == grabbedID)
		}

		// Fill the remaining space so the bottom indicator sits flush with
		// the bottom padding area. The height parameter is the TOTAL box
		// height; ColumnStyle consumes 3 lines of it.
		usedLines := 1 + 1 + (len(visibleApps) * CardHeight)

		hasBottomIndicator := endIdx < len(apps)
		var bottomIndicatorLines int
		if hasBottomIndicator {
			bottomIndicatorLines = 2 // newline + indicator text
		}

		contentHeight := height - 3
		remainingLines := contentHeight - usedLines - bottomIndicatorLines

		if remainingLines > 0 {
			content += strings.Repeat("\n", remainingLines)
		}

		if hasBottomIndicator {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	// Apply column styling with selection highlight and fixed height
	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(height - 2)
	}

	return style.Render(content)
}

// MaxVisibleCards returns how many cards fit in a column of the given total
// height. Shared with the navigation handlers so scroll math stays in sync
// with what RenderColumn actually draws.
func MaxVisibleCards(columnHeight int) int {
	const columnOverhead = 5
	return max((columnHeight-columnOverhead)/CardHeight, 1)
}
