package plainui

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/session"
)

// clearScreen erases the display and homes the cursor.
const clearScreen = "\x1b[2J\x1b[1;1H"

// Surface writes frames as plain text.
type Surface struct {
	w     io.Writer
	raw   bool
	clear bool
}

var _ session.Surface = (*Surface)(nil)

// SurfaceOptions configures a Surface.
type SurfaceOptions struct {
	// Raw emits "\r\n" line endings for a terminal in raw mode.
	Raw bool

	// Clear redraws from the top of a cleared screen on every frame.
	Clear bool
}

// NewSurface creates a Surface writing to w.
func NewSurface(w io.Writer, opts SurfaceOptions) *Surface {
	return &Surface{w: w, raw: opts.Raw, clear: opts.Clear}
}

// Render draws f.
func (s *Surface) Render(f session.Frame) error {
	var b strings.Builder
	if s.clear {
		b.WriteString(clearScreen)
	} else {
		b.WriteString("\n")
	}

	eol := "\n"
	if s.raw {
		eol = "\r\n"
	}
	for _, line := range FormatFrame(f) {
		b.WriteString(line)
		b.WriteString(eol)
	}

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// FormatFrame lays out a frame as text lines.
func FormatFrame(f session.Frame) []string {
	lines := []string{
		fmt.Sprintf("Round %d  Question %d/%d  Score %d/%d",
			f.Round, f.Position, f.Total, f.Tally.Correct, f.Tally.Answered),
		"",
	}
	lines = append(lines, f.Description...)

	if f.HasOptions() {
		lines = append(lines, "")
		for _, o := range f.Options {
			lines = append(lines, fmt.Sprintf("%s %s. %s", marker(f, o.Label), o.Label, o.Text))
		}
	}
	lines = append(lines, "")

	if !f.Revealed {
		if f.HasOptions() {
			lines = append(lines, "Type your answer, or press space to reveal.")
		} else {
			lines = append(lines, "Press space to reveal the answer.")
		}
		return append(lines, "Enter: next question  Ctrl+C: quit")
	}

	switch f.Verdict {
	case session.Correct:
		lines = append(lines, "Correct!")
	case session.Incorrect:
		lines = append(lines, fmt.Sprintf("Incorrect, the answer is %s.", f.Correct))
	default:
		if f.Correct.IsSet() {
			lines = append(lines, fmt.Sprintf("Answer: %s", f.Correct))
		} else {
			lines = append(lines, "Answer:")
		}
	}
	lines = append(lines, f.Reason...)
	lines = append(lines, "", "Space: hide  Enter: next question  Ctrl+C: quit")
	return lines
}

func marker(f session.Frame, l bank.Label) string {
	switch {
	case f.Revealed && l == f.Correct:
		return "*"
	case f.Revealed && l == f.Selection:
		return "x"
	default:
		return " "
	}
}
