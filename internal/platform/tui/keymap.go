package tui

import "github.com/charmbracelet/bubbles/key"

// BoardKeyMap defines the key bindings for the board screen.
// Centralizing them here keeps the bindings testable and the help bar
// consistent with what Update actually handles.
type BoardKeyMap struct {
	Submit  key.Binding
	NewGame key.Binding
	Tally   key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NewGame, k.Tally, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NewGame},
		{k.Tally, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings for the board.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "guess"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n", "r", "enter"),
			key.WithHelp("n", "new game"),
		),
		Tally: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "session tally"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// TallyKeyMap defines the key bindings for the session tally screen.
type TallyKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TallyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k TallyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultTallyKeyMap returns default key bindings for the tally screen.
func DefaultTallyKeyMap() TallyKeyMap {
	return TallyKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back to board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
