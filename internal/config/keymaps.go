package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Composer
	Send          string `yaml:"send"`
	InsertNewline string `yaml:"insert_newline"`

	// Sessions
	NewChat       string `yaml:"new_chat"`
	RenameChat    string `yaml:"rename_chat"`
	DeleteChat    string `yaml:"delete_chat"`
	PrevSession   string `yaml:"prev_session"`
	NextSession   string `yaml:"next_session"`
	ToggleSidebar string `yaml:"toggle_sidebar"`

	// Transcript
	ScrollUp   string `yaml:"scroll_up"`
	ScrollDown string `yaml:"scroll_down"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Composer
		Send:          "enter",
		InsertNewline: "shift+enter",

		// Sessions
		NewChat:       "ctrl+n",
		RenameChat:    "ctrl+r",
		DeleteChat:    "ctrl+x",
		PrevSession:   "ctrl+p",
		NextSession:   "ctrl+f",
		ToggleSidebar: "ctrl+b",

		// Transcript
		ScrollUp:   "ctrl+u",
		ScrollDown: "ctrl+d",

		// Other
		ShowHelp: "ctrl+g",
		Quit:     "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Send == "" {
		k.Send = defaults.Send
	}
	if k.InsertNewline == "" {
		k.InsertNewline = defaults.InsertNewline
	}
	if k.NewChat == "" {
		k.NewChat = defaults.NewChat
	}
	if k.RenameChat == "" {
		k.RenameChat = defaults.RenameChat
	}
	if k.DeleteChat == "" {
		k.DeleteChat = defaults.DeleteChat
	}
	if k.PrevSession == "" {
		k.PrevSession = defaults.PrevSession
	}
	if k.NextSession == "" {
		k.NextSession = defaults.NextSession
	}
	if k.ToggleSidebar == "" {
		k.ToggleSidebar = defaults.ToggleSidebar
	}
	if k.ScrollUp == "" {
		k.ScrollUp = defaults.ScrollUp
	}
	if k.ScrollDown == "" {
		k.ScrollDown = defaults.ScrollDown
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
