package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func choiceBank() *bank.Bank {
	return bank.New([]bank.Card{{
		Question: bank.Question{
			Description: []string{"Which planet is largest?"},
			Options: []bank.Option{
				{Label: 'A', Text: "Mars"},
				{Label: 'B', Text: "Jupiter"},
			},
		},
		Answer: bank.Answer{Correct: 'B', Reason: []string{"It is a gas giant."}},
	}})
}

func freeTextBank() *bank.Bank {
	return bank.New([]bank.Card{{
		Question: bank.Question{Description: []string{"Capital of France?"}},
		Answer:   bank.Answer{Reason: []string{"Paris"}},
	}})
}

func testQuizScreen(t *testing.T, b *bank.Bank) (*QuizScreen, *session.Session) {
	t.Helper()
	s, err := session.New(b, session.Options{Seed: 1})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return New(s), s
}

func TestQuizScreen_Title(t *testing.T) {
	q, _ := testQuizScreen(t, choiceBank())
	if q.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", q.Title(), "Quiz")
	}
}

func TestQuizScreen_SelectOption(t *testing.T) {
	q, s := testQuizScreen(t, choiceBank())

	var scr screen.Screen = q
	scr, cmd := scr.Update(keyPress('b'))
	if cmd != nil {
		t.Error("expected no command on selection")
	}

	f := s.Frame()
	if !f.Revealed {
		t.Error("expected answer revealed after selection")
	}
	if f.Selection != 'B' {
		t.Errorf("Selection = %q, want B", f.Selection.String())
	}
	if f.Verdict != session.Correct {
		t.Errorf("Verdict = %v, want correct", f.Verdict)
	}

	view := scr.View(100, 30)
	if !strings.Contains(view, "Correct!") {
		t.Errorf("expected verdict in view, got:\n%s", view)
	}
}

func TestQuizScreen_UppercaseSelect(t *testing.T) {
	q, s := testQuizScreen(t, choiceBank())
	q.Update(keyPress('A'))
	if s.Frame().Verdict != session.Incorrect {
		t.Errorf("Verdict = %v, want incorrect", s.Frame().Verdict)
	}
}

func TestQuizScreen_SpaceToggles(t *testing.T) {
	q, s := testQuizScreen(t, freeTextBank())

	q.Update(keyPress(' '))
	if !s.State().Revealed() {
		t.Fatal("expected revealed after space")
	}
	if !strings.Contains(q.View(100, 30), "Paris") {
		t.Error("expected reason in revealed view")
	}

	q.Update(specialKey(tea.KeySpace))
	if s.State().Revealed() {
		t.Error("expected hidden after second space")
	}
}

func TestQuizScreen_EnterAdvances(t *testing.T) {
	q, s := testQuizScreen(t, freeTextBank())
	q.Update(keyPress(' '))
	q.Update(specialKey(tea.KeyEnter))

	cur := s.Current()
	if cur.Round != 2 {
		t.Errorf("Round = %d, want 2", cur.Round)
	}
	if s.State().Revealed() {
		t.Error("expected fresh hidden state after advance")
	}
}

func TestQuizScreen_EscQuits(t *testing.T) {
	q, _ := testQuizScreen(t, choiceBank())
	_, cmd := q.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestQuizScreen_HelpPushesScreen(t *testing.T) {
	q, _ := testQuizScreen(t, choiceBank())
	_, cmd := q.Update(keyPress('?'))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if msg.Screen.Title() != "Help" {
		t.Errorf("pushed %q, want Help", msg.Screen.Title())
	}
}

func TestQuizScreen_SelectOnFreeTextIgnored(t *testing.T) {
	q, s := testQuizScreen(t, freeTextBank())
	q.Update(keyPress('a'))
	if s.State().Revealed() {
		t.Error("letter on a free-text question should be a no-op")
	}
	if !strings.Contains(q.View(100, 30), "Think of your answer") {
		t.Error("expected free-text hint")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	q, _ := testQuizScreen(t, choiceBank())
	hints := q.KeyHints()
	if len(hints) == 0 || hints[0].Key != "A-B" {
		t.Errorf("expected option range hint first, got %+v", hints)
	}

	q.Update(keyPress(' '))
	for _, h := range q.KeyHints() {
		if h.Description == "Answer" {
			t.Error("answer hint should be hidden once revealed")
		}
	}
}

func TestKeyMap_Event(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
		want session.Event
		ok   bool
	}{
		{"space", keyPress(' '), session.ToggleReveal(), true},
		{"enter", specialKey(tea.KeyEnter), session.Advance(), true},
		{"esc", specialKey(tea.KeyEscape), session.Quit(), true},
		{"lower letter", keyPress('c'), session.SelectOption('C'), true},
		{"upper letter", keyPress('Z'), session.SelectOption('Z'), true},
		{"digit", keyPress('1'), session.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Event(tt.msg)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Event(%q) = %+v, %v; want %+v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
			}
		})
	}
}
