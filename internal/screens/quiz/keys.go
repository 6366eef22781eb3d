package quiz

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/session"
)

// KeyMap holds the quiz key bindings.
type KeyMap struct {
	Reveal  key.Binding
	Answer  key.Binding
	Advance key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reveal: key.NewBinding(
			key.WithKeys("space", " "),
			key.WithHelp("space", "reveal / hide answer"),
		),
		Answer: key.NewBinding(
			key.WithKeys(letterKeys()...),
			key.WithHelp("a-z", "choose option"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next question"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Advance, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Answer, k.Reveal, k.Advance},
		{k.Help, k.Quit},
	}
}

// Event translates a key press into a session event.
func (k KeyMap) Event(msg tea.KeyMsg) (session.Event, bool) {
	switch {
	case key.Matches(msg, k.Reveal):
		return session.ToggleReveal(), true
	case key.Matches(msg, k.Advance):
		return session.Advance(), true
	case key.Matches(msg, k.Quit):
		return session.Quit(), true
	case key.Matches(msg, k.Answer):
		if l, ok := bank.ParseLabel(strings.ToUpper(msg.String())); ok {
			return session.SelectOption(l), true
		}
	}
	return session.Event{}, false
}

// letterKeys lists a-z and A-Z.
func letterKeys() []string {
	keys := make([]string, 0, 2*bank.MaxOptions)
	for i := range bank.MaxOptions {
		l := bank.LabelAt(i).String()
		keys = append(keys, strings.ToLower(l), l)
	}
	return keys
}
