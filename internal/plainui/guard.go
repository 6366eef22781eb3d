package plainui

import (
	"fmt"
	"sync"

	"golang.org/x/term"
)

// Guard holds a terminal in raw mode until Restore is called.
type Guard struct {
	fd    int
	state *term.State
	once  sync.Once
	err   error
}

// MakeRaw puts the terminal on fd into raw mode. Callers defer Restore.
func MakeRaw(fd int) (*Guard, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	return &Guard{fd: fd, state: state}, nil
}

// Restore returns the terminal to the mode it had before MakeRaw. Only the
// first call has any effect; later calls return the first result.
func (g *Guard) Restore() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		if err := term.Restore(g.fd, g.state); err != nil {
			g.err = fmt.Errorf("restore terminal: %w", err)
		}
	})
	return g.err
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
