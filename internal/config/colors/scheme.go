package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "dragon")
	Preset string `yaml:"preset"`

	// Primary accent color (active session, titles, focused borders)
	Accent string `yaml:"accent"`

	// Background colors
	Background        string `yaml:"background"`
	SidebarBackground string `yaml:"sidebar_background"`

	// Chat bubble colors
	UserBubbleBg      string `yaml:"user_bubble_bg"`
	UserBubbleBorder  string `yaml:"user_bubble_border"`
	AgentBubbleBg     string `yaml:"agent_bubble_bg"`
	AgentBubbleBorder string `yaml:"agent_bubble_border"`

	// Composer colors
	ComposerBorder        string `yaml:"composer_border"`
	ComposerFocusedBorder string `yaml:"composer_focused_border"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Delete string `yaml:"delete"` // delete confirmations
	Stop   string `yaml:"stop"`   // streaming stop indicator

	// Text colors
	Title    string `yaml:"title"`
	Subtle   string `yaml:"subtle"` // muted/placeholder text, timestamps
	Normal   string `yaml:"normal"`
	Thinking string `yaml:"thinking"` // thinking-process trace

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "default", "":
		return Default()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base.
// If preset is specified, loads that preset first, then overrides with
// custom values.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.SidebarBackground == "" {
		c.SidebarBackground = preset.SidebarBackground
	}
	if c.UserBubbleBg == "" {
		c.UserBubbleBg = preset.UserBubbleBg
	}
	if c.UserBubbleBorder == "" {
		c.UserBubbleBorder = preset.UserBubbleBorder
	}
	if c.AgentBubbleBg == "" {
		c.AgentBubbleBg = preset.AgentBubbleBg
	}
	if c.AgentBubbleBorder == "" {
		c.AgentBubbleBorder = preset.AgentBubbleBorder
	}
	if c.ComposerBorder == "" {
		c.ComposerBorder = preset.ComposerBorder
	}
	if c.ComposerFocusedBorder == "" {
		c.ComposerFocusedBorder = preset.ComposerFocusedBorder
	}
	if c.Create == "" {
		c.Create = preset.Create
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.Stop == "" {
		c.Stop = preset.Stop
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Thinking == "" {
		c.Thinking = preset.Thinking
	}
	if c.StatusBarBg == "" {
		c.StatusBarBg = preset.StatusBarBg
	}
	if c.StatusBarText == "" {
		c.StatusBarText = preset.StatusBarText
	}
}

// MergeFrom overrides this scheme's values with any non-empty values
// from the other scheme. Used for external theme files.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Background != "" {
		c.Background = other.Background
	}
	if other.SidebarBackground != "" {
		c.SidebarBackground = other.SidebarBackground
	}
	if other.UserBubbleBg != "" {
		c.UserBubbleBg = other.UserBubbleBg
	}
	if other.UserBubbleBorder != "" {
		c.UserBubbleBorder = other.UserBubbleBorder
	}
	if other.AgentBubbleBg != "" {
		c.AgentBubbleBg = other.AgentBubbleBg
	}
	if other.AgentBubbleBorder != "" {
		c.AgentBubbleBorder = other.AgentBubbleBorder
	}
	if other.ComposerBorder != "" {
		c.ComposerBorder = other.ComposerBorder
	}
	if other.ComposerFocusedBorder != "" {
		c.ComposerFocusedBorder = other.ComposerFocusedBorder
	}
	if other.Create != "" {
		c.Create = other.Create
	}
	if other.Delete != "" {
		c.Delete = other.Delete
	}
	if other.Stop != "" {
		c.Stop = other.Stop
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.Thinking != "" {
		c.Thinking = other.Thinking
	}
	if other.StatusBarBg != "" {
		c.StatusBarBg = other.StatusBarBg
	}
	if other.StatusBarText != "" {
		c.StatusBarText = other.StatusBarText
	}
}
