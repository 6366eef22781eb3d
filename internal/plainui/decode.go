// Package plainui is the line-oriented front-end: it decodes keystrokes
// from a byte stream and redraws each frame as plain text. It works on a
// raw terminal as well as on pipes.
package plainui

import (
	"bufio"
	"context"
	"io"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/session"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// Source decodes session events from a byte stream, one byte per key.
// Bytes that map to no event are skipped.
type Source struct {
	r      *bufio.Reader
	lastCR bool
}

var _ session.EventSource = (*Source)(nil)

// NewSource reads keys from r.
func NewSource(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// Next blocks until a byte maps to an event. End of input is reported as
// io.EOF.
func (s *Source) Next(ctx context.Context) (session.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return session.Event{}, err
		}
		c, err := s.r.ReadByte()
		if err != nil {
			return session.Event{}, err
		}
		if ev, ok := s.decode(c); ok {
			return ev, nil
		}
	}
}

func (s *Source) decode(c byte) (session.Event, bool) {
	// A terminal in cooked mode or a CRLF file sends "\r\n" for one enter.
	afterCR := s.lastCR
	s.lastCR = c == '\r'

	switch {
	case c == ' ':
		return session.ToggleReveal(), true
	case c == '\r':
		return session.Advance(), true
	case c == '\n':
		if afterCR {
			return session.Event{}, false
		}
		return session.Advance(), true
	case c == keyCtrlC || c == keyCtrlD:
		return session.Quit(), true
	case c >= 'a' && c <= 'z':
		return session.SelectOption(bank.Label(c - 'a' + 'A')), true
	case c >= 'A' && c <= 'Z':
		return session.SelectOption(bank.Label(c)), true
	}
	return session.Event{}, false
}
