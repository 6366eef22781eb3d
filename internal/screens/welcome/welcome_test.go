package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "quiz" }
func (s *stubScreen) Title() string                           { return "Quiz" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	stats := bank.Stats{Cards: 3, MultipleChoice: 2, FreeText: 1, Options: 7}
	return New("capitals.txt", stats, factory), &callCount
}

func TestWelcome_View(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(80, 24)
	for _, want := range []string{"capitals.txt", "3 cards", "2 multiple-choice", "1 free-text"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestWelcome_EnterStartsQuizOnce(t *testing.T) {
	w, calls := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Quiz" {
		t.Errorf("replacement title = %q, want Quiz", msg.Screen.Title())
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no second transition")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestWelcome_EscQuits(t *testing.T) {
	w, calls := newTestWelcome()
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
	if *calls != 0 {
		t.Error("quiz should not be built on quit")
	}
}

func TestWelcome_OtherKeysIgnored(t *testing.T) {
	w, _ := newTestWelcome()
	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("expected no command")
	}
}

func TestRenderBanner_Compact(t *testing.T) {
	if got := RenderBanner(30); !strings.Contains(got, bannerCompact) {
		t.Errorf("expected compact banner, got %q", got)
	}
}

func TestDescribeStats(t *testing.T) {
	got := describeStats(bank.Stats{Cards: 1, FreeText: 1})
	if got != "1 card · 1 free-text" {
		t.Errorf("describeStats = %q", got)
	}
}
