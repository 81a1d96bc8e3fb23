package term

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle  key.Binding
	Skip    key.Binding
	Reset   key.Binding
	Open    key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next phase"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Skip, keys.Reset, keys.Open, keys.Dismiss, keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}
