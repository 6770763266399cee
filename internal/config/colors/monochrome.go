package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Backgrounds
		Background:        "#121212",
		SidebarBackground: "#1C1C1C",

		// Bubbles
		UserBubbleBg:      "#3A3A3A",
		UserBubbleBorder:  "#FFFFFF",
		AgentBubbleBg:     "#1C1C1C",
		AgentBubbleBorder: "#585858",

		// Composer
		ComposerBorder:        "#585858",
		ComposerFocusedBorder: "#FFFFFF",

		// Semantic
		Create: "#FFFFFF",
		Delete: "#FFFFFF",
		Stop:   "#FFFFFF",

		// Text
		Title:    "#FFFFFF",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Thinking: "#8A8A8A",

		// Status bar
		StatusBarBg:   "#3A3A3A",
		StatusBarText: "#FFFFFF",
	}
}
