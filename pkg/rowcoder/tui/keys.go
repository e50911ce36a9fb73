package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Toggle       key.Binding
	Save         key.Binding
	Next         key.Binding
	Prev         key.Binding
	NextUncoded  key.Binding
	PrevUncoded  key.Binding
	Jump         key.Binding
	Clear        key.Binding
	CopyPrevious key.Binding
	EditNotes    key.Binding
	NotesSave    key.Binding
	NotesCancel  key.Binding
	Export       key.Binding
	ExportOther  key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "label up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "label down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save row"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/n", "next row"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/p", "prev row"),
		),
		NextUncoded: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "next uncoded"),
		),
		PrevUncoded: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "prev uncoded"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "jump to row"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
		CopyPrevious: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy prev row"),
		),
		EditNotes: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "edit notes"),
		),
		NotesSave: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save notes"),
		),
		NotesCancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		ExportOther: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "export other format"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Next, k.Prev, k.NextUncoded, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Save},
		{k.Next, k.Prev, k.NextUncoded, k.PrevUncoded, k.Jump},
		{k.Clear, k.CopyPrevious, k.EditNotes},
		{k.Export, k.ExportOther, k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}
