// Package session runs a quiz over a bank: it orders each round, relabels
// multiple-choice options per presentation and drives the reveal state
// machine from logical events.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/abhisek/quizdeck/internal/bank"
)

// ErrNoCards is returned by New for a nil or empty bank.
var ErrNoCards = errors.New("session: bank has no cards")

// Options configures a Session.
type Options struct {
	// ShuffleOptions relabels multiple-choice options on every presentation.
	ShuffleOptions bool

	// Seed fixes the random sequence. Zero picks a random seed.
	Seed uint64

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{ShuffleOptions: true}
}

// Presentation is one showing of a card. Card is a transient copy; the
// bank entry at Index is never modified.
type Presentation struct {
	Index    int
	Round    int
	Position int
	Card     bank.Card
}

// Tally counts graded selections for the running process.
type Tally struct {
	Answered int
	Correct  int
}

// Session walks the bank round after round until Quit.
type Session struct {
	bank    *bank.Bank
	rng     *rand.Rand
	shuffle bool
	log     *slog.Logger

	order []int
	pos   int
	round int

	current Presentation
	state   State
	graded  bool
	tally   Tally
}

// New starts a session at the first question of round one.
func New(b *bank.Bank, opts Options) (*Session, error) {
	if b == nil || b.Len() == 0 {
		return nil, ErrNoCards
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		bank:    b,
		rng:     newRand(opts.Seed),
		shuffle: opts.ShuffleOptions,
		log:     logger,
	}
	s.startRound()
	s.present()
	return s, nil
}

func (s *Session) startRound() {
	s.round++
	s.pos = 0
	s.order = Permutation(s.rng, s.bank.Len())
	s.log.Debug("round started", "round", s.round, "cards", len(s.order))
}

func (s *Session) present() {
	idx := s.order[s.pos]
	card := s.bank.Card(idx)
	if s.shuffle && card.Question.HasOptions() {
		card = Relabel(s.rng, card)
	}
	s.current = Presentation{
		Index:    idx,
		Round:    s.round,
		Position: s.pos + 1,
		Card:     card,
	}
	s.state = State{}
	s.graded = false
}

// Current returns the presentation on screen.
func (s *Session) Current() Presentation {
	p := s.current
	p.Card = p.Card.Clone()
	return p
}

// State returns the reveal state of the current presentation.
func (s *Session) State() State {
	return s.state
}

// Tally returns the running counters.
func (s *Session) Tally() Tally {
	return s.tally
}

// Order returns the presentation order of the current round as bank
// indices.
func (s *Session) Order() []int {
	return append([]int(nil), s.order...)
}

// Apply feeds one event to the state machine. It returns false once the
// session should stop.
func (s *Session) Apply(ev Event) bool {
	switch ev.Kind {
	case EventToggleReveal:
		s.state = s.state.Toggle()
	case EventSelectOption:
		next, ok := s.state.Select(ev.Label, s.current.Card.Question)
		if !ok {
			return true
		}
		s.state = next
		s.record()
	case EventAdvance:
		s.advance()
	case EventQuit:
		s.log.Info("session quit",
			"round", s.round,
			"answered", s.tally.Answered,
			"correct", s.tally.Correct)
		return false
	}
	return true
}

// record updates the tally once per presentation.
func (s *Session) record() {
	v := Grade(s.current.Card.Answer.Correct, s.state.Selection)
	s.log.Debug("option selected",
		"card", s.current.Index,
		"label", s.state.Selection.String(),
		"verdict", v.String())
	if s.graded || v == NoVerdict {
		return
	}
	s.graded = true
	s.tally.Answered++
	if v == Correct {
		s.tally.Correct++
	}
}

func (s *Session) advance() {
	s.pos++
	if s.pos >= len(s.order) {
		s.startRound()
	}
	s.present()
}

// Frame is everything a surface needs to draw the current question.
type Frame struct {
	Description []string
	Options     []bank.Option // nil for free-text questions
	Revealed    bool
	Correct     bank.Label
	Selection   bank.Label
	Reason      []string
	Verdict     Verdict

	Round    int
	Position int
	Total    int
	Tally    Tally
}

// HasOptions reports whether the frame shows a multiple-choice question.
func (f Frame) HasOptions() bool {
	return f.Options != nil
}

// Frame snapshots the current presentation for rendering.
func (s *Session) Frame() Frame {
	c := s.current.Card.Clone()
	return Frame{
		Description: c.Question.Description,
		Options:     c.Question.Options,
		Revealed:    s.state.Revealed(),
		Correct:     c.Answer.Correct,
		Selection:   s.state.Selection,
		Reason:      c.Answer.Reason,
		Verdict:     Grade(c.Answer.Correct, s.state.Selection),
		Round:       s.current.Round,
		Position:    s.current.Position,
		Total:       len(s.order),
		Tally:       s.tally,
	}
}

// Run renders and consumes events until Quit, end of input or an error.
func (s *Session) Run(ctx context.Context, src EventSource, surf Surface) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := surf.Render(s.Frame()); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		ev, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.Apply(Quit())
				return nil
			}
			return fmt.Errorf("read event: %w", err)
		}
		if !s.Apply(ev) {
			return nil
		}
	}
}
