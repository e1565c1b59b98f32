package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Start     key.Binding
	Select    key.Binding
	Next      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Place     key.Binding
	Hint      key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Menu      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var Keys = KeyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter", "start"),
	),
	Select: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick piece"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next piece"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Place: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "place"),
	),
	Hint: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "hint"),
	),
	Pause: key.NewBinding(
		key.WithKeys("esc", "p"),
		key.WithHelp("esc/p", "pause"),
	),
	Restart: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// PlayingHelp lists the bindings shown under the board.
func (k KeyMap) PlayingHelp() []key.Binding {
	return []key.Binding{k.Select, k.Next, k.Up, k.Down, k.Left, k.Right, k.Place, k.Hint, k.Pause, k.Restart, k.Quit}
}
