package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the game keybindings. It implements help.KeyMap for the
// bubbles help bar.
type keyMap struct {
	Undo     key.Binding
	Redo     key.Binding
	CopySeed key.Binding
	Save     key.Binding
	NewGame  key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Undo: key.NewBinding(
			key.WithKeys("backspace", "u"),
			key.WithHelp("u/bksp", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("r/enter", "redo"),
		),
		CopySeed: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy seed"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n n", "new game"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.CopySeed, k.Save, k.NewGame, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Undo, k.Redo, k.CopySeed}, {k.Save, k.NewGame, k.Quit}}
}
