package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizdeck/internal/bank"
)

func choiceQuestion() bank.Question {
	return bank.Question{
		Description: []string{"Pick one"},
		Options: []bank.Option{
			{Label: 'A', Text: "foo"},
			{Label: 'B', Text: "bar"},
		},
	}
}

func TestState_ToggleTwiceClearsSelection(t *testing.T) {
	s, ok := State{}.Select('B', choiceQuestion())
	assert.True(t, ok)
	assert.Equal(t, PhaseRevealed, s.Phase)
	assert.Equal(t, bank.Label('B'), s.Selection)

	s = s.Toggle()
	assert.Equal(t, PhaseHidden, s.Phase)
	assert.Equal(t, bank.NoLabel, s.Selection)

	s = s.Toggle()
	assert.Equal(t, PhaseRevealed, s.Phase)
	assert.Equal(t, bank.NoLabel, s.Selection)

	s = s.Toggle()
	assert.Equal(t, State{}, s)
}

func TestState_SelectNoOps(t *testing.T) {
	freeText := bank.Question{Description: []string{"Q"}}
	revealed := State{Phase: PhaseRevealed}

	tests := []struct {
		name  string
		state State
		label bank.Label
		q     bank.Question
	}{
		{"free text question", State{}, 'A', freeText},
		{"unknown label", State{}, 'Z', choiceQuestion()},
		{"no label", State{}, bank.NoLabel, choiceQuestion()},
		{"already revealed", revealed, 'A', choiceQuestion()},
		{"empty options list", State{}, 'A', bank.Question{Description: []string{"Q"}, Options: []bank.Option{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.state.Select(tt.label, tt.q)
			assert.False(t, ok)
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestState_SelectAfterDoOver(t *testing.T) {
	s, _ := State{}.Select('A', choiceQuestion())
	s = s.Toggle()

	s, ok := s.Select('B', choiceQuestion())
	assert.True(t, ok)
	assert.Equal(t, bank.Label('B'), s.Selection)
	assert.True(t, s.Revealed())
}

func TestGrade(t *testing.T) {
	tests := []struct {
		correct, selection bank.Label
		want               Verdict
	}{
		{'B', 'B', Correct},
		{'B', 'A', Incorrect},
		{'A', 'Z', Incorrect},
		{'B', bank.NoLabel, NoVerdict},
		{bank.NoLabel, 'A', NoVerdict},
		{bank.NoLabel, bank.NoLabel, NoVerdict},
	}
	for _, tt := range tests {
		got := Grade(tt.correct, tt.selection)
		if got != tt.want {
			t.Errorf("Grade(%q, %q) = %v, want %v", tt.correct.String(), tt.selection.String(), got, tt.want)
		}
	}
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "toggle-reveal", ToggleReveal().Kind.String())
	assert.Equal(t, "select-option", SelectOption('A').Kind.String())
	assert.Equal(t, "advance", Advance().Kind.String())
	assert.Equal(t, "quit", Quit().Kind.String())
}
