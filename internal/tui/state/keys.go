package state

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the dashboard key bindings.
type keyMap struct {
	Quit        key.Binding
	TogglePlay  key.Binding
	Next        key.Binding
	Prev        key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	NarrowLeft  key.Binding
	WidenLeft   key.Binding
	NarrowRight key.Binding
	WidenRight  key.Binding
	ResetLayout key.Binding
	Reload      key.Binding
	Help        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		TogglePlay:  key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Next:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Prev:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		ScrollUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NarrowLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "narrow certificates")),
		WidenLeft:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "widen certificates")),
		NarrowRight: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "widen media")),
		WidenRight:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "narrow media")),
		ResetLayout: key.NewBinding(key.WithKeys("="), key.WithHelp("=", "reset layout")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePlay, k.Prev, k.Next, k.ScrollDown, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePlay, k.Prev, k.Next},
		{k.ScrollUp, k.ScrollDown, k.Reload},
		{k.NarrowLeft, k.WidenLeft, k.NarrowRight, k.WidenRight, k.ResetLayout},
		{k.Help, k.Quit},
	}
}
