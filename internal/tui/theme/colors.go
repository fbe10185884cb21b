package theme

import "huntboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Background     string
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	SelectedBorder string
	SelectedBg     string
	CardBg         string
	GrabbedBorder  string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Background = colors.Background
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	CardBg = colors.CardBackground
	GrabbedBorder = colors.GrabbedBorder
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
