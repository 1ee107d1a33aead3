package navigator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings for the bubbletea front end
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap mirrors the arrow/enter/escape layout of the raw loop and
// adds vim-style aliases.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev page"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next page"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc/q", "quit"),
	),
}

// ShortHelp returns the short help text for the keymap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Confirm, k.Cancel}
}

// FullHelp returns the full help text for the keymap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Prev, k.Next},
		{k.Confirm, k.Cancel},
	}
}

// Translate maps a bubbletea key message onto a logical key event.
func (k KeyMap) Translate(msg tea.KeyMsg) KeyEvent {
	switch {
	case key.Matches(msg, k.Confirm):
		return Press(CodeEnter)
	case key.Matches(msg, k.Cancel):
		return Press(CodeEscape)
	case key.Matches(msg, k.Up):
		return Press(CodeUp)
	case key.Matches(msg, k.Down):
		return Press(CodeDown)
	case key.Matches(msg, k.Prev):
		return Press(CodeLeft)
	case key.Matches(msg, k.Next):
		return Press(CodeRight)
	default:
		return Press(CodeOther)
	}
}
