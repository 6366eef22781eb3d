package bank

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Block markers of the text format.
const (
	markerQuestion = "Question"
	markerAnswer   = "Answer"
	markerOptions  = "==="
)

// blockDelimiter separates question blocks: one blank line.
const blockDelimiter = "\n\n"

// ParseOptions tunes the validation rules of Parse.
type ParseOptions struct {
	// StrictReason requires a non-empty reason on every card, including
	// multiple-choice ones.
	StrictReason bool
}

// Parse turns a text document into a bank. Every block must be valid; the
// first malformed block aborts the load with a *FormatError.
func Parse(doc string, opts ParseOptions) (*Bank, error) {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	trimmedLeft := strings.TrimLeftFunc(doc, unicode.IsSpace)
	line := 1 + strings.Count(doc[:len(doc)-len(trimmedLeft)], "\n")
	doc = strings.TrimRightFunc(trimmedLeft, unicode.IsSpace)
	if doc == "" {
		return nil, &FormatError{Err: ErrEmptyBank}
	}

	blocks := strings.Split(doc, blockDelimiter)
	cards := make([]Card, 0, len(blocks))
	for i, block := range blocks {
		card, err := parseBlock(block, i+1, line, opts)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
		line += strings.Count(block, "\n") + 2
	}
	return &Bank{cards: cards}, nil
}

// parseState is a state of the per-block line machine.
type parseState int

const (
	stateStart parseState = iota
	stateReadDescription
	stateReadOptions
	stateReadCorrectOption
	stateReadReason
)

func (s parseState) String() string {
	switch s {
	case stateStart:
		return "start"
	case stateReadDescription:
		return "description"
	case stateReadOptions:
		return "options"
	case stateReadCorrectOption:
		return "correct option"
	case stateReadReason:
		return "reason"
	default:
		return "unknown"
	}
}

// blockParser holds the machine for one block.
type blockParser struct {
	state parseState
	card  Card
}

// step feeds one line to the machine. The returned error lacks its
// position; parseBlock fills it in.
func (p *blockParser) step(line string) *FormatError {
	switch p.state {
	case stateStart:
		if line != markerQuestion {
			return lineError(ErrMissingHeader, line)
		}
		p.state = stateReadDescription

	case stateReadDescription:
		switch line {
		case markerAnswer:
			p.state = stateReadReason
		case markerOptions:
			p.card.Question.Options = []Option{}
			p.state = stateReadOptions
		default:
			p.card.Question.Description = append(p.card.Question.Description, line)
		}

	case stateReadOptions:
		if line == markerAnswer {
			p.state = stateReadCorrectOption
			return nil
		}
		opt, ok := parseOption(line)
		if !ok {
			return lineError(ErrInvalidOption, line)
		}
		p.card.Question.Options = append(p.card.Question.Options, opt)

	case stateReadCorrectOption:
		correct, ok := ParseLabel(line)
		if !ok {
			if utf8.RuneCountInString(line) == 1 {
				return lineError(ErrCorrectNotAmongOptions, line)
			}
			return lineError(ErrExpectedCorrectOption, line)
		}
		if err := checkOptions(p.card.Question.Options, correct); err != nil {
			return &FormatError{Err: err}
		}
		p.card.Answer.Correct = correct
		p.state = stateReadReason

	case stateReadReason:
		p.card.Answer.Reason = append(p.card.Answer.Reason, line)
	}
	return nil
}

// parseBlock runs the machine over one block. firstLine is the document
// line number of the block's first line.
func parseBlock(block string, index, firstLine int, opts ParseOptions) (Card, error) {
	var p blockParser
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if err := p.step(line); err != nil {
			err.Block = index
			err.Line = firstLine + i
			return Card{}, err
		}
	}

	lastLine := firstLine + len(lines) - 1
	if p.state != stateReadReason {
		return Card{}, &FormatError{
			Block:  index,
			Line:   lastLine,
			Detail: "stopped while reading " + p.state.String(),
			Err:    ErrPrematureEnd,
		}
	}
	if blank(p.card.Question.Description) {
		return Card{}, &FormatError{Block: index, Line: firstLine, Err: ErrEmptyDescription}
	}
	if err := checkReason(p.card, opts.StrictReason); err != nil {
		return Card{}, &FormatError{Block: index, Line: lastLine, Err: err}
	}
	return p.card, nil
}

// parseOption reads a "LETTER.text" line. Further dots in the text are
// replaced by single spaces.
func parseOption(line string) (Option, bool) {
	if len(line) < 2 || line[1] != '.' {
		return Option{}, false
	}
	label := Label(line[0])
	if !label.Valid() {
		return Option{}, false
	}
	parts := strings.Split(line, ".")
	return Option{Label: label, Text: strings.Join(parts[1:], " ")}, true
}

// lineError builds a FormatError quoting the offending line.
func lineError(err error, line string) *FormatError {
	const maxRunes = 40
	if r := []rune(line); len(r) > maxRunes {
		line = string(r[:maxRunes]) + "..."
	}
	return &FormatError{Err: err, Detail: strconv.Quote(line)}
}
