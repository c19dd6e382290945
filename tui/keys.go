package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Open     key.Binding
	Preview  key.Binding
	Back     key.Binding
	Reload   key.Binding
	Order    key.Binding
	MorePage key.Binding
	LessPage key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Preview:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Order:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "order")),
		MorePage: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		LessPage: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Preview, k.Reload, k.Order, k.MorePage, k.LessPage, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Preview, k.Back},
		{k.Reload, k.Order, k.MorePage, k.LessPage, k.Quit},
	}
}
