package components

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"huntboard/internal/models"
	"huntboard/internal/tui/theme"
)

type DetailProps struct {
	App   *models.Application
	Width int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDetail renders the full record for one application: the header
// fields followed by the notes as rendered markdown.
func RenderDetail(props DetailProps) string {
	app := props.App
	width := max(props.Width, 20)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	header := TitleStyle.Render(app.Company) + valueStyle.Render(" - "+app.Role)

	var fields []string
	fields = append(fields, labelStyle.Render("Stage:    ")+valueStyle.Render(app.Status.Display()))
	if app.URL != "" {
		fields = append(fields, labelStyle.Render("URL:      ")+valueStyle.Render(wordwrap.String(app.URL, width-10)))
	}
	if app.Location != "" {
		fields = append(fields, labelStyle.Render("Location: ")+valueStyle.Render(app.Location))
	}
	if app.Salary != "" {
		fields = append(fields, labelStyle.Render("Salary:   ")+valueStyle.Render(app.Salary))
	}
	fields = append(fields, labelStyle.Render("Added:    ")+valueStyle.Render(app.CreatedAt.Format("2006-01-02 15:04")))
	fields = append(fields, labelStyle.Render("Updated:  ")+valueStyle.Render(app.UpdatedAt.Format("2006-01-02 15:04")))

	sections := []string{
		header,
		"",
		strings.Join(fields, "\n"),
		"",
		renderNotes(app.Notes, width),
	}

	return strings.Join(sections, "\n")
}

// renderNotes renders the notes field as markdown, falling back to
// word-wrapped plain text when the renderer is unavailable.
func renderNotes(notes string, width int) string {
	if notes == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Render("No notes")
	}

	renderer, err := getRenderer(width)
	if err == nil {
		rendered, err := renderer.Render(notes)
		if err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return wordwrap.String(notes, width)
}

// RenderDeleteConfirm renders the y/n prompt shown before deleting a record.
func RenderDeleteConfirm(app *models.Application) string {
	question := fmt.Sprintf("Delete %s - %s?", app.Company, app.Role)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	return TitleStyle.Render(question) + "\n\n" + hintStyle.Render("y to delete · n to keep")
}
