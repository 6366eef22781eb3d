// Package welcome is the title card shown before the first question.
package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// WelcomeScreen names the bank and waits for a key before the quiz starts.
type WelcomeScreen struct {
	name         string
	stats        bank.Stats
	quizFactory  func() screen.Screen
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen produced
// by quizFactory.
func New(name string, stats bank.Stats, quizFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		name:        name,
		stats:       stats,
		quizFactory: quizFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	switch kmsg.String() {
	case "esc", "q":
		return w, tea.Quit
	case "enter", "space":
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	quiz := w.quizFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		theme.Body.Bold(true).Render(w.name),
		theme.Dimmed.Render(describeStats(w.stats)),
		"",
		theme.Hint.Render("press enter to start"),
	}
	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func describeStats(s bank.Stats) string {
	parts := []string{plural(s.Cards, "card")}
	if s.MultipleChoice > 0 {
		parts = append(parts, fmt.Sprintf("%d multiple-choice", s.MultipleChoice))
	}
	if s.FreeText > 0 {
		parts = append(parts, fmt.Sprintf("%d free-text", s.FreeText))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
