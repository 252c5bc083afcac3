package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	NavUp   key.Binding
	NavDown key.Binding
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Filter  key.Binding
	Select  key.Binding
	Open    key.Binding
	Assign  key.Binding
	Submit  key.Binding
	Login   key.Binding
	Logout  key.Binding
	Edit    key.Binding
	Add     key.Binding
	Reset   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NavUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "up")),
		NavDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "down")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open detail")),
		Assign:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "pick manager")),
		Submit:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "assign selected")),
		Login:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "login")),
		Logout:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "logout")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Reset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "reset password")),
	}
}
