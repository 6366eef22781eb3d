package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// optionRange returns the key range hint for the frame's options, e.g. "A-D".
func optionRange(f session.Frame) string {
	if len(f.Options) == 0 {
		return ""
	}
	first := f.Options[0].Label
	last := f.Options[len(f.Options)-1].Label
	if first == last {
		return first.String()
	}
	return first.String() + "-" + last.String()
}

func renderFrame(f session.Frame, width, height int) string {
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder

	label := fmt.Sprintf("Round %d", f.Round)
	b.WriteString("  ")
	b.WriteString(components.NewProgressBar(label, f.Position, f.Total, inner).View())
	b.WriteString("\n\n")

	question := theme.Body.Bold(true).Render(strings.Join(f.Description, "\n"))
	if f.HasOptions() {
		opts := components.OptionList{
			Options:   f.Options,
			Revealed:  f.Revealed,
			Correct:   f.Correct,
			Selection: f.Selection,
		}
		question += "\n\n" + opts.View()
	}
	b.WriteString(theme.Card.Width(inner).Render(question))
	b.WriteString("\n\n")

	if f.Revealed {
		b.WriteString(renderAnswer(f, inner))
		if !layout.IsCompactWidth(width) {
			b.WriteString("\n\n  ")
			b.WriteString(theme.Hint.Render("Press Enter for the next question."))
		}
	} else {
		b.WriteString("  ")
		b.WriteString(theme.Hint.Render(hiddenHint(f)))
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

func renderAnswer(f session.Frame, width int) string {
	var b strings.Builder
	if v := verdictLine(f); v != "" {
		b.WriteString("  ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	if len(f.Reason) > 0 {
		b.WriteString(theme.AnswerCard.Width(width).Render(strings.Join(f.Reason, "\n")))
	}
	return b.String()
}

func hiddenHint(f session.Frame) string {
	if f.HasOptions() {
		return fmt.Sprintf("Type your answer (%s), or press Space to reveal.", optionRange(f))
	}
	return "Think of your answer, then press Space to reveal."
}

func verdictLine(f session.Frame) string {
	switch f.Verdict {
	case session.Correct:
		return theme.Correct.Render("Correct!")
	case session.Incorrect:
		return theme.Incorrect.Render(fmt.Sprintf("Not quite. The answer is %s.", f.Correct))
	}
	if f.Correct != bank.NoLabel {
		return theme.Selected.Render(fmt.Sprintf("The answer is %s.", f.Correct))
	}
	return ""
}
