package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	typing bool

	Quit          key.Binding
	ForceQuit     key.Binding
	Notifications key.Binding
	Mistyped      key.Binding
	Report        key.Binding
	Reset         key.Binding
	Option        key.Binding
	Insert        key.Binding
	Help          key.Binding
	Confirm       key.Binding
	Menu          key.Binding
	Backspace     key.Binding
	Copy          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Notifications: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle notifications")),
		Mistyped:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle mistake tracking")),
		Report:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "most mistyped")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset mistakes")),
		Option:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "switch content")),
		Insert:        key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "start typing")),
		Help:          key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
		Confirm:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "use default set")),
		Menu:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Backspace:     key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "delete")),
		Copy:          key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy report")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	if k.typing {
		return []key.Binding{k.Menu, k.Backspace, k.ForceQuit}
	}
	return []key.Binding{k.Insert, k.Option, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Insert, k.Option, k.Confirm, k.Menu},
		{k.Report, k.Copy, k.Reset, k.Mistyped},
		{k.Notifications, k.Help, k.Quit},
	}
}
