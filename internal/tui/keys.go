package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the list view. It implements help.KeyMap.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Bindings used while the text input or a prompt has focus.
var (
	submitKey  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save"))
	cancelKey  = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	confirmKey = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))
	forceQuit  = key.NewBinding(key.WithKeys("ctrl+c"))
)

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Toggle, k.Add, k.Edit},
		{k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}

// inputKeyMap is shown while typing.
type inputKeyMap struct{}

func (inputKeyMap) ShortHelp() []key.Binding  { return []key.Binding{submitKey, cancelKey} }
func (inputKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{submitKey, cancelKey}} }
