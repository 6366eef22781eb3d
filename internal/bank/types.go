package bank

// Label identifies a multiple-choice option. Valid labels are the uppercase
// ASCII letters A-Z; the zero value means "no label".
type Label byte

// NoLabel is the absent label.
const NoLabel Label = 0

// MaxOptions is the number of distinct labels available (A-Z).
const MaxOptions = 26

// LabelAt returns the label for the option at position i (0 -> A).
func LabelAt(i int) Label {
	return Label('A' + i)
}

// ParseLabel returns the label for a single uppercase letter.
func ParseLabel(s string) (Label, bool) {
	if len(s) != 1 {
		return NoLabel, false
	}
	l := Label(s[0])
	return l, l.Valid()
}

// Valid reports whether l is one of A-Z.
func (l Label) Valid() bool {
	return l >= 'A' && l <= 'Z'
}

// IsSet reports whether l carries a value.
func (l Label) IsSet() bool {
	return l != NoLabel
}

func (l Label) String() string {
	if l == NoLabel {
		return ""
	}
	return string(rune(l))
}

// Option is one labeled choice of a multiple-choice question.
type Option struct {
	Label Label
	Text  string
}

// Question is the prompt side of a card.
type Question struct {
	// Description holds the question body, one entry per line.
	Description []string

	// Options is nil for free-text questions.
	Options []Option
}

// HasOptions reports whether the question is multiple-choice.
func (q Question) HasOptions() bool {
	return q.Options != nil
}

// Option returns the option carrying label l.
func (q Question) Option(l Label) (Option, bool) {
	for _, o := range q.Options {
		if o.Label == l {
			return o, true
		}
	}
	return Option{}, false
}

// Clone returns a deep copy of q.
func (q Question) Clone() Question {
	c := Question{
		Description: append([]string(nil), q.Description...),
	}
	if q.Options != nil {
		c.Options = append(make([]Option, 0, len(q.Options)), q.Options...)
	}
	return c
}

// Answer is the response side of a card.
type Answer struct {
	// Correct is set iff the paired question has options.
	Correct Label

	// Reason is the explanation, one entry per line. It may be empty when
	// Correct is set.
	Reason []string
}

// Clone returns a deep copy of a.
func (a Answer) Clone() Answer {
	return Answer{
		Correct: a.Correct,
		Reason:  append([]string(nil), a.Reason...),
	}
}

// Card pairs a question with its answer.
type Card struct {
	Question Question
	Answer   Answer
}

// Clone returns a deep copy of c.
func (c Card) Clone() Card {
	return Card{Question: c.Question.Clone(), Answer: c.Answer.Clone()}
}

// Bank is the parsed, read-only set of cards in document order.
type Bank struct {
	cards []Card
}

// New builds a bank from cards. The slice is copied.
func New(cards []Card) *Bank {
	b := &Bank{cards: make([]Card, len(cards))}
	for i, c := range cards {
		b.cards[i] = c.Clone()
	}
	return b
}

// Len returns the number of cards.
func (b *Bank) Len() int {
	return len(b.cards)
}

// Card returns a copy of the i-th card in document order.
func (b *Bank) Card(i int) Card {
	return b.cards[i].Clone()
}

// Cards returns a copy of all cards in document order.
func (b *Bank) Cards() []Card {
	out := make([]Card, len(b.cards))
	for i, c := range b.cards {
		out[i] = c.Clone()
	}
	return out
}

// Stats summarizes a bank for the check command.
type Stats struct {
	Cards          int
	MultipleChoice int
	FreeText       int
	Options        int
}

// Stats counts cards by kind.
func (b *Bank) Stats() Stats {
	var s Stats
	for _, c := range b.cards {
		s.Cards++
		if c.Question.HasOptions() {
			s.MultipleChoice++
			s.Options += len(c.Question.Options)
		} else {
			s.FreeText++
		}
	}
	return s
}
