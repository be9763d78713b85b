package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the list key bindings.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Delete         key.Binding
	DeleteAll      key.Binding
	CycleFilter    key.Binding
	FilterAll      key.Binding
	FilterDone     key.Binding
	FilterProgress key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	Submit         key.Binding
	List           key.Binding
	Help           key.Binding
	Quit           key.Binding
	ForceQuit      key.Binding
	Dismiss        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle status")),
		Delete:         key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		DeleteAll:      key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete all")),
		CycleFilter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		FilterAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterDone:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed")),
		FilterProgress: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "in progress")),
		NextField:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		List:           key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "go to list")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Dismiss:        key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Toggle, k.Delete, k.CycleFilter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Delete, k.DeleteAll},
		{k.CycleFilter, k.FilterAll, k.FilterDone, k.FilterProgress},
		{k.NextField, k.PrevField, k.Submit, k.List},
		{k.Help, k.Quit},
	}
}
