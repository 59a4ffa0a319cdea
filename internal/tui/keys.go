package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/adflow/internal/config"
)

// keyMap turns the configured key mappings into bindings.
type keyMap struct {
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	View     key.Binding
	SaveForm key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding

	Search key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	bind := func(keys []string, help string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help))
	}
	return keyMap{
		Add:      bind([]string{k.AddItem}, "add"),
		Edit:     bind([]string{k.EditItem}, "edit"),
		Delete:   bind([]string{k.DeleteItem}, "delete"),
		View:     bind([]string{k.ViewItem}, "view"),
		SaveForm: bind([]string{k.SaveForm}, "save form"),

		PrevColumn: bind([]string{k.PrevColumn}, "previous column"),
		NextColumn: bind([]string{k.NextColumn}, "next column"),
		PrevItem:   bind([]string{k.PrevItem, "up"}, "previous item"),
		NextItem:   bind([]string{k.NextItem, "down"}, "next item"),
		NextTab:    bind([]string{k.NextTab}, "next tab"),
		PrevTab:    bind([]string{k.PrevTab}, "previous tab"),

		Search: bind([]string{k.Search}, "search"),
		Help:   bind([]string{k.ShowHelp}, "help"),
		Quit:   bind([]string{k.Quit, "ctrl+c"}, "quit"),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.View},
		{k.PrevColumn, k.NextColumn, k.PrevItem, k.NextItem},
		{k.NextTab, k.PrevTab, k.Search, k.Help, k.Quit},
		{boardKeys.Pick, boardKeys.Step, boardKeys.Cancel},
	}
}

// boardKeys document the fixed move keys in the help screen. They are
// handled by the board controller, not matched through the keymap.
var boardKeys = struct {
	Pick, Step, Cancel key.Binding
}{
	Pick:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter/space", "pick up / put down")),
	Step:   key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "move picked card")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel move")),
}
