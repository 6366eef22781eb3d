package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// OptionList renders the labeled options of a multiple-choice question.
// Once revealed, the correct option is marked and a wrong selection is
// flagged.
type OptionList struct {
	Options   []bank.Option
	Revealed  bool
	Correct   bank.Label
	Selection bank.Label
}

// NewOptionList creates an option list in the hidden state.
func NewOptionList(options []bank.Option) OptionList {
	return OptionList{Options: options}
}

// Marker returns the gutter marker for option l: "▸" for the selection,
// "✓" for the correct option once revealed, "✗" for a wrong selection.
func (o OptionList) Marker(l bank.Label) string {
	switch {
	case o.Revealed && l == o.Correct:
		return "✓"
	case o.Revealed && l == o.Selection:
		return "✗"
	case l == o.Selection:
		return "▸"
	default:
		return " "
	}
}

// View renders one option per line.
func (o OptionList) View() string {
	var b strings.Builder
	for i, opt := range o.Options {
		if i > 0 {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("%s %s.  %s", o.Marker(opt.Label), opt.Label, opt.Text)
		b.WriteString(o.style(opt.Label).Render(line))
	}
	return b.String()
}

func (o OptionList) style(l bank.Label) lipgloss.Style {
	if !o.Revealed {
		return theme.Unselected
	}
	switch l {
	case o.Correct:
		return theme.Correct
	case o.Selection:
		return theme.Incorrect
	default:
		return theme.Dimmed
	}
}
