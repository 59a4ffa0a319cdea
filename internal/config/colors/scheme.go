// Package colors holds the colour presets for the adflow TUI.
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (tabs, titles, highlights)
	Accent string `yaml:"accent"`

	Background       string `yaml:"background"`
	ColumnBackground string `yaml:"column_background"`

	// Semantic colors
	Create string `yaml:"create"` // creation forms
	Edit   string `yaml:"edit"`   // edit forms
	Delete string `yaml:"delete"` // delete confirmations

	// Board colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	PickedBorder   string `yaml:"picked_border"` // card held by keyboard or drag

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Priority colors
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`
}

// GetPreset returns a preset color scheme by name. Unknown names get the default.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so presets and overrides can be merged
// without repeating each field.
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background, &c.ColumnBackground,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.PickedBorder,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
		&c.High, &c.Medium, &c.Low,
	}
}

// ApplyDefaults fills empty colors from the named preset.
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	theirs := preset.fields()
	for i, mine := range c.fields() {
		if *mine == "" {
			*mine = *theirs[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	theirs := other.fields()
	for i, mine := range c.fields() {
		if *theirs[i] != "" {
			*mine = *theirs[i]
		}
	}
}
