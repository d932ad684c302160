package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevDay, NextDay   key.Binding
	PrevWeek, NextWeek key.Binding
	Today              key.Binding
	Up, Down           key.Binding
	Toggle             key.Binding
	Delete, Undo       key.Binding
	Add                key.Binding
	SwitchPane         key.Binding
	Settings           key.Binding
	Quit               key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		PrevDay:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev week")),
		NextWeek:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next week")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Undo:       key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		SwitchPane: key.NewBinding(key.WithKeys("tab", "g"), key.WithHelp("tab", "tasks/goals")),
		Settings:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Toggle, k.Add, k.Delete, k.SwitchPane, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Today},
		{k.Up, k.Down, k.Toggle, k.Delete, k.Undo},
		{k.Add, k.SwitchPane, k.Settings, k.Quit},
	}
}
