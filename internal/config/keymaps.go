package config

// KeyMappings defines the configurable key bindings. The board keys that
// pick up and move a card (enter, space, esc, left, right) are fixed so
// that keyboard-only use works the same everywhere.
type KeyMappings struct {
	// Items
	AddItem    string `yaml:"add_item"`
	EditItem   string `yaml:"edit_item"`
	DeleteItem string `yaml:"delete_item"`
	ViewItem   string `yaml:"view_item"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevItem   string `yaml:"prev_item"`
	NextItem   string `yaml:"next_item"`
	NextTab    string `yaml:"next_tab"`
	PrevTab    string `yaml:"prev_tab"`

	// Other
	Search   string `yaml:"search"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddItem:    "a",
		EditItem:   "e",
		DeleteItem: "d",
		ViewItem:   "v",
		SaveForm:   "ctrl+s",

		PrevColumn: "h",
		NextColumn: "l",
		PrevItem:   "k",
		NextItem:   "j",
		NextTab:    "tab",
		PrevTab:    "shift+tab",

		Search:   "/",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.AddItem, &k.EditItem, &k.DeleteItem, &k.ViewItem, &k.SaveForm,
		&k.PrevColumn, &k.NextColumn, &k.PrevItem, &k.NextItem, &k.NextTab, &k.PrevTab,
		&k.Search, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	theirs := defaults.fields()
	for i, mine := range k.fields() {
		if *mine == "" {
			*mine = *theirs[i]
		}
	}
}

// reserved are the fixed board keys; mapping one of them would shadow
// the keyboard move workflow.
var reserved = map[string]bool{"enter": true, "space": true, " ": true, "esc": true, "left": true, "right": true}

// Conflicts returns the configured keys that collide with a fixed board key
// or with each other.
func (k KeyMappings) Conflicts() []string {
	var conflicts []string
	seen := map[string]bool{}
	for _, key := range k.fields() {
		switch {
		case reserved[*key]:
			conflicts = append(conflicts, *key)
		case seen[*key]:
			conflicts = append(conflicts, *key)
		}
		seen[*key] = true
	}
	return conflicts
}
