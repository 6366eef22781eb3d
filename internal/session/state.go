package session

import "github.com/abhisek/quizdeck/internal/bank"

// Phase is the reveal phase of the question on screen.
type Phase int

const (
	PhaseHidden   Phase = iota // answer not shown
	PhaseRevealed              // answer shown
)

func (p Phase) String() string {
	if p == PhaseRevealed {
		return "revealed"
	}
	return "hidden"
}

// State is the per-presentation interaction state. The zero value is a
// fresh Hidden state with no selection.
type State struct {
	Phase     Phase
	Selection bank.Label
}

// Revealed reports whether the answer is shown.
func (s State) Revealed() bool {
	return s.Phase == PhaseRevealed
}

// Toggle flips the reveal phase. Hiding again clears the selection so the
// question can be answered afresh.
func (s State) Toggle() State {
	if s.Phase == PhaseRevealed {
		return State{Phase: PhaseHidden}
	}
	return State{Phase: PhaseRevealed, Selection: s.Selection}
}

// Select records l as the user's answer and reveals. It only applies while
// hidden and when q offers an option labeled l; otherwise s is returned
// unchanged with ok=false.
func (s State) Select(l bank.Label, q bank.Question) (next State, ok bool) {
	if s.Phase != PhaseHidden || !q.HasOptions() {
		return s, false
	}
	if _, found := q.Option(l); !found {
		return s, false
	}
	return State{Phase: PhaseRevealed, Selection: l}, true
}
