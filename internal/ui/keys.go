package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all keyboard shortcuts for the portfolio.
// Help text is a key into the active translation table, not display text;
// the help overlay and footer translate it at render time.
type KeyMap struct {
	// Scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding

	// Sections, in nav order.
	Sections [len(sectionIDs)]key.Binding

	// Presentation
	Theme   key.Binding
	Locale  key.Binding
	Palette key.Binding

	// Actions
	Copy   key.Binding
	Chat   key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		// Up/Down share help text (displayed as single row)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  k/j", "help.scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  k/j", "help.scroll"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+b"),
			key.WithHelp("PgUp/PgDn", "help.page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+f", " "),
			key.WithHelp("PgUp/PgDn", "help.page"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("Home  g", "help.top"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "help.theme"),
		),
		Locale: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "help.language"),
		),
		Palette: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "help.palette"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "help.copy"),
		),
		Chat: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "help.chat"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help.help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "help.help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "help.quit"),
		),
	}
	for i := range km.Sections {
		digit := string(rune('1' + i))
		km.Sections[i] = key.NewBinding(
			key.WithKeys(digit),
			key.WithHelp("1-5", "help.sections"),
		)
	}
	return km
}

// sectionFor returns the index of the section binding msg matches.
func (k KeyMap) sectionFor(msg tea.KeyMsg) (int, bool) {
	for i, b := range k.Sections {
		if key.Matches(msg, b) {
			return i, true
		}
	}
	return 0, false
}
