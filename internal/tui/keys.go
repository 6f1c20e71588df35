package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	EditTitle   key.Binding
	EditDesc    key.Binding
	EditPos     key.Binding
	RemoveItem  key.Binding
	DeleteSect  key.Binding
	AddItem     key.Binding
	Copy        key.Binding
	Reload      key.Binding
	Quit        key.Binding
	Accept      key.Binding
	Decline     key.Binding
	Submit      key.Binding
	SaveText    key.Binding
	Cancel      key.Binding
	SwitchFocus key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		EditTitle:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "title")),
		EditDesc:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "description")),
		EditPos:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "position")),
		RemoveItem:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove item")),
		DeleteSect:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete section")),
		AddItem:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept:      key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "confirm")),
		Decline:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		SaveText:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results/search")),
	}
}

// ShortHelp implements help.KeyMap for the main screen.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.EditTitle, k.EditDesc, k.EditPos, k.RemoveItem, k.DeleteSect, k.AddItem, k.Copy, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.EditTitle, k.EditDesc, k.EditPos},
		{k.RemoveItem, k.DeleteSect, k.AddItem},
		{k.Copy, k.Reload, k.Quit},
	}
}
