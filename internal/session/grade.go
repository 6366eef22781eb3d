package session

import "github.com/abhisek/quizdeck/internal/bank"

// Verdict is the outcome of grading a selection.
type Verdict int

const (
	NoVerdict Verdict = iota // nothing to grade
	Correct
	Incorrect
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Grade compares the user's selection with the correct option. Without
// both labels there is no verdict.
func Grade(correct, selection bank.Label) Verdict {
	if !correct.IsSet() || !selection.IsSet() {
		return NoVerdict
	}
	if correct == selection {
		return Correct
	}
	return Incorrect
}
