package colors

// Default returns the default color scheme (amber on charcoal)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#FACC15",

		Background:       "#030712",
		ColumnBackground: "#111827",

		Create: "#4ADE80",
		Edit:   "#60A5FA",
		Delete: "#F87171",

		ColumnBorder:   "#374151",
		CardBorder:     "#4B5563",
		CardBackground: "#1F2937",
		SelectedBorder: "#FACC15",
		SelectedBg:     "#374151",
		PickedBorder:   "#60A5FA",

		Title:  "#F9FAFB",
		Subtle: "#9CA3AF",
		Normal: "#E5E7EB",

		InfoFg:    "#BBF7D0",
		InfoBg:    "#14532D",
		WarningFg: "#FEF08A",
		WarningBg: "#713F12",
		ErrorFg:   "#FECACA",
		ErrorBg:   "#7F1D1D",

		High:   "#F87171",
		Medium: "#FACC15",
		Low:    "#4ADE80",
	}
}
