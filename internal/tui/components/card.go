package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"huntboard/internal/models"
	"huntboard/internal/tui/theme"
)

// CardHeight is the fixed height of an application card
const CardHeight = 5

// cardTextMaxLength is where company and role text gets truncated so every
// card stays exactly one line per field
const cardTextMaxLength = 24

// RenderCard renders a single application as a card
//
//	┌─────────────────────┐
//	│ {Company}           │
//	│ {Role}              │
//	│ location │ salary   │
//	└─────────────────────┘
//
// This has a fixed width and height
func RenderCard(app *models.Application, selected bool, grabbed bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	company := renderCardCompany(app, bg)
	role := renderCardRole(app, bg)
	metadataLine := renderCardMetadata(app, bg)
	content := company + role + metadataLine

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if grabbed {
		style = style.BorderForeground(lipgloss.Color(theme.GrabbedBorder))
	} else if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

func renderCardCompany(app *models.Application, bg string) string {
	company := truncateCardText(app.Company, bg)
	return lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(bg)).
		Render(" " + company)
}

func renderCardRole(app *models.Application, bg string) string {
	role := truncateCardText(app.Role, bg)
	roleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg))
	return "\n " + roleStyle.Render(role)
}

// renderCardMetadata renders location and salary on the same line, separated by │
func renderCardMetadata(app *models.Application, bg string) string {
	var locationDisplay string
	var salaryDisplay string

	if app.Location != "" {
		locationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg))
		locationDisplay = locationStyle.Render(clipCardField(app.Location, 12))
	} else {
		locationStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg)).Italic(true)
		locationDisplay = locationStyle.Render("no location")
	}

	if app.Salary != "" {
		salaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg))
		salaryDisplay = salaryStyle.Render(clipCardField(app.Salary, 12))
	} else {
		salaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg)).Italic(true)
		salaryDisplay = salaryStyle.Render("no salary")
	}

	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Background(lipgloss.Color(bg))
	separator := separatorStyle.Render(" │ ")

	return "\n " + locationDisplay + separator + salaryDisplay
}

// truncateCardText shortens text to the card width with a styled ellipsis
func truncateCardText(text string, bg string) string {
	if len(text) >= cardTextMaxLength {
		ellipsisStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true)
		return text[:cardTextMaxLength] + ellipsisStyle.Render("...")
	}
	return text
}

// clipCardField hard-truncates a metadata field so the line never wraps
func clipCardField(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) > limit {
		return text[:limit]
	}
	return text
}
