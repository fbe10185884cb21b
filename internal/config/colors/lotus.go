package colors

// Lotus returns the Kanagawa Lotus color scheme (light theme with cream/paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary accent color
		Accent: palette.lotusViolet4,

		// Background colors
		Background:       palette.lotusWhite0,
		ColumnBackground: palette.lotusWhite2,

		// Semantic colors
		Create: palette.lotusGreen,
		Edit:   palette.lotusBlue4,
		Delete: palette.lotusRed,

		// UI element colors
		ColumnBorder:   palette.lotusViolet1,
		CardBorder:     palette.lotusViolet1,
		CardBackground: palette.lotusWhite3,
		SelectedBorder: palette.lotusAqua,
		SelectedBg:     palette.lotusWhite3,
		GrabbedBorder:  palette.lotusOrange,

		// Text colors
		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray3,
		Normal: palette.lotusInk1,

		// Notification colors
		InfoFg:    palette.lotusBlue4,
		InfoBg:    palette.lotusWhite2,
		WarningFg: palette.lotusOrange,
		WarningBg: palette.lotusWhite2,
		ErrorFg:   palette.lotusRed,
		ErrorBg:   palette.lotusWhite2,

		// Status bar
		StatusBarBg:   palette.lotusViolet4,
		StatusBarText: palette.lotusWhite3,
	}
}
