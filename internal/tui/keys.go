package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings shared by the page and single-carousel views.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	First     key.Binding
	Last      key.Binding
	GoTo      key.Binding
	Pause     key.Binding
	Focus     key.Binding
	FocusBack key.Binding
	Open      key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Menu      key.Binding
	Escape    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "go to dot"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next slider"),
		),
		FocusBack: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev slider"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Pause, k.Focus, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.GoTo},
		{k.Pause, k.Focus, k.FocusBack, k.Open},
		{k.ScrollUp, k.ScrollDn, k.PageUp, k.PageDown},
		{k.Menu, k.Escape, k.Help, k.Quit},
	}
}

// Key matching helpers for use in Update functions.

// IsQuit returns true if the key message matches quit keys.
func IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, DefaultKeyMap().Quit)
}

// DigitIndex returns the zero-based position named by a 1-9 key press.
func DigitIndex(msg tea.KeyMsg) (int, bool) {
	if !key.Matches(msg, DefaultKeyMap().GoTo) {
		return 0, false
	}
	s := msg.String()
	return int(s[0] - '1'), true
}
