package colors

// Default returns the default color scheme (blue theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#5F87D7",

		// Backgrounds
		Background:        "#1C1C1C",
		SidebarBackground: "#262626",

		// Bubbles
		UserBubbleBg:      "#1C3A5E",
		UserBubbleBorder:  "#5F87D7",
		AgentBubbleBg:     "#262626",
		AgentBubbleBorder: "#585858",

		// Composer
		ComposerBorder:        "#585858",
		ComposerFocusedBorder: "#5F87D7",

		// Semantic
		Create: "#5FD75F",
		Delete: "#FF0000",
		Stop:   "#FF5F5F",

		// Text
		Title:    "#87AFFF",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Thinking: "#8A8A8A",

		// Status bar
		StatusBarBg:   "#5F87D7",
		StatusBarText: "#1C1C1C",
	}
}
