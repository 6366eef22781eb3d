package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/session"
)

func testModel(t *testing.T) (AppModel, *session.Session) {
	t.Helper()
	b := bank.New([]bank.Card{{
		Question: bank.Question{
			Description: []string{"Pick B"},
			Options: []bank.Option{
				{Label: 'A', Text: "no"},
				{Label: 'B', Text: "yes"},
			},
		},
		Answer: bank.Answer{Correct: 'B'},
	}})
	s, err := session.New(b, session.Options{Seed: 1})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return newAppModel(s, Options{}), s
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestAppModel_ViewEmptyBeforeResize(t *testing.T) {
	m, _ := testModel(t)
	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}
	if m.render() != "" {
		t.Error("expected empty content before the first resize")
	}
}

func TestAppModel_ViewShowsQuiz(t *testing.T) {
	m, _ := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(m, tea.KeyPressMsg{Code: 'b', Text: "b"})

	content := m.render()
	for _, want := range []string{"quizdeck", "Pick B", "Round 1", "✓ 1/1"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestAppModel_TooSmall(t *testing.T) {
	m, _ := testModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestAppModel_HelpAndBack(t *testing.T) {
	m, _ := testModel(t)

	m, cmd := update(m, tea.KeyPressMsg{Code: '?', Text: "?"})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	m, _ = update(m, cmd())
	if m.router.Active().Title() != "Help" {
		t.Fatalf("active = %q, want Help", m.router.Active().Title())
	}

	m, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	m, _ = update(m, cmd())
	if m.router.Active().Title() != "Quiz" {
		t.Errorf("active = %q, want Quiz", m.router.Active().Title())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestAppModel_WelcomeThenQuiz(t *testing.T) {
	_, s := testModel(t)
	m := newAppModel(s, Options{BankName: "demo.txt", Stats: bank.Stats{Cards: 1, MultipleChoice: 1, Options: 2}})
	if m.router.Active().Title() != "" {
		t.Fatalf("expected title card first, got %q", m.router.Active().Title())
	}

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected transition command")
	}
	m, _ = update(m, cmd())
	if m.router.Active().Title() != "Quiz" {
		t.Errorf("active = %q, want Quiz", m.router.Active().Title())
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}
