package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Applications
	AddApplication    string `yaml:"add_application"`
	EditApplication   string `yaml:"edit_application"`
	DeleteApplication string `yaml:"delete_application"`
	ViewApplication   string `yaml:"view_application"`

	// Dragging
	Grab   string `yaml:"grab"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Applications
		AddApplication:    "a",
		EditApplication:   "e",
		DeleteApplication: "d",
		ViewApplication:   " ",

		// Dragging
		Grab:   "g",
		Drop:   "enter",
		Cancel: "esc",

		// Forms
		SaveForm: "ctrl+s",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddApplication == "" {
		k.AddApplication = defaults.AddApplication
	}
	if k.EditApplication == "" {
		k.EditApplication = defaults.EditApplication
	}
	if k.DeleteApplication == "" {
		k.DeleteApplication = defaults.DeleteApplication
	}
	if k.ViewApplication == "" {
		k.ViewApplication = defaults.ViewApplication
	}
	if k.Grab == "" {
		k.Grab = defaults.Grab
	}
	if k.Drop == "" {
		k.Drop = defaults.Drop
	}
	if k.Cancel == "" {
		k.Cancel = defaults.Cancel
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
