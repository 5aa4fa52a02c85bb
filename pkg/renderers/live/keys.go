package live

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the live model reacts to.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Handle    key.Binding
	Left      key.Binding
	Right     key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	Commit    key.Binding
	Revert    key.Binding
	Toggle    key.Binding
	Reset     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev filter")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next filter")),
		Handle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch handle")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move")),
		FastLeft:  key.NewBinding(key.WithKeys("shift+left", "H")),
		FastRight: key.NewBinding(key.WithKeys("shift+right", "L")),
		Commit:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
		Revert:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "revert")),
		Toggle:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "missing values")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Commit, k.Toggle, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Handle},
		{k.Left, k.Right, k.Commit, k.Revert},
		{k.Toggle, k.Reset, k.Quit},
	}
}
