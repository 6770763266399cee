package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary
		Accent: "#8992A7",

		// Backgrounds
		Background:        "#181616",
		SidebarBackground: "#1D1C19",

		// Bubbles
		UserBubbleBg:      "#223249",
		UserBubbleBorder:  "#8BA4B0",
		AgentBubbleBg:     "#282727",
		AgentBubbleBorder: "#625E5A",

		// Composer
		ComposerBorder:        "#625E5A",
		ComposerFocusedBorder: "#8EA4A2",

		// Semantic
		Create: "#87A987",
		Delete: "#C4746E",
		Stop:   "#E46876",

		// Text
		Title:    "#8BA4B0",
		Subtle:   "#737C73",
		Normal:   "#C5C9C5",
		Thinking: "#7A8382",

		// Status bar
		StatusBarBg:   "#8992A7",
		StatusBarText: "#181616",
	}
}
