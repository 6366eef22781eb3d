// Package quiz is the Bubble Tea screen that plays a session.
package quiz

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/keyhelp"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// QuizScreen implements screen.Screen for a running session.
type QuizScreen struct {
	session *session.Session
	keys    KeyMap
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving s.
func New(s *session.Session) *QuizScreen {
	return &QuizScreen{
		session: s,
		keys:    DefaultKeyMap(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	f := q.session.Frame()
	hints := make([]layout.KeyHint, 0, 5)
	if f.HasOptions() && !f.Revealed {
		hints = append(hints, layout.KeyHint{Key: optionRange(f), Description: "Answer"})
	}
	if f.Revealed {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Hide"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Reveal"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Next"},
		layout.KeyHint{Key: "?", Description: "Help"},
		layout.KeyHint{Key: "Esc", Description: "Quit"},
	)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	if key.Matches(kmsg, q.keys.Help) {
		return q, func() tea.Msg {
			return router.PushScreenMsg{Screen: keyhelp.New(q.keys)}
		}
	}

	ev, ok := q.keys.Event(kmsg)
	if !ok {
		return q, nil
	}
	if !q.session.Apply(ev) {
		return q, tea.Quit
	}
	return q, nil
}

func (q *QuizScreen) View(width, height int) string {
	return renderFrame(q.session.Frame(), width, height)
}
