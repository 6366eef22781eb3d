package session

import (
	"context"

	"github.com/abhisek/quizdeck/internal/bank"
)

// EventKind enumerates the logical inputs the session understands.
type EventKind int

const (
	EventToggleReveal EventKind = iota // show or hide the answer
	EventSelectOption                  // pick an option by label
	EventAdvance                       // move to the next question
	EventQuit                          // end the session
)

func (k EventKind) String() string {
	switch k {
	case EventToggleReveal:
		return "toggle-reveal"
	case EventSelectOption:
		return "select-option"
	case EventAdvance:
		return "advance"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one logical input. Label is only meaningful for
// EventSelectOption.
type Event struct {
	Kind  EventKind
	Label bank.Label
}

// ToggleReveal returns a reveal toggle event.
func ToggleReveal() Event { return Event{Kind: EventToggleReveal} }

// SelectOption returns an option selection event.
func SelectOption(l bank.Label) Event { return Event{Kind: EventSelectOption, Label: l} }

// Advance returns an advance event.
func Advance() Event { return Event{Kind: EventAdvance} }

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// EventSource yields logical events one at a time. Returning io.EOF ends
// the session as if Quit had been received.
type EventSource interface {
	Next(ctx context.Context) (Event, error)
}

// Surface draws frames. It keeps no state between calls.
type Surface interface {
	Render(f Frame) error
}
