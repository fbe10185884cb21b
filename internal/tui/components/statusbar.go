package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"huntboard/internal/tui/theme"
)

type StatusBarProps struct {
	Width int

	// TotalCount is the number of applications across all columns
	TotalCount int

	// GrabbedCompany is the company of the card being carried, empty when idle
	GrabbedCompany string

	// DropKey and CancelKey label the grab-mode hints with the configured keys
	DropKey   string
	CancelKey string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: application count, or the carry hint while a card is grabbed
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf("huntboard - %d applications", props.TotalCount)
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	if props.GrabbedCompany != "" {
		grabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GrabbedBorder)).Bold(true)
		leftText = fmt.Sprintf("moving %s", props.GrabbedCompany)
		rightText = fmt.Sprintf("%s to drop · %s to cancel", props.DropKey, props.CancelKey)
		leftRendered := grabStyle.Render(leftText)
		rightRendered := style.Render(rightText)
		return joinEnds(leftRendered, rightRendered, props.Width)
	}

	return joinEnds(style.Render(leftText), style.Render(rightText), props.Width)
}

// joinEnds lays out left and right text with a gap filling the width
func joinEnds(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gapWidth := width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
