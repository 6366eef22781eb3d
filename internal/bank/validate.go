package bank

import "strings"

// checkOptions enforces the option-set invariants: at most MaxOptions
// entries, pairwise distinct labels, and correct naming one of them.
func checkOptions(opts []Option, correct Label) error {
	if len(opts) > MaxOptions {
		return ErrTooManyOptions
	}
	seen := make(map[Label]bool, len(opts))
	for _, o := range opts {
		if !o.Label.Valid() {
			return ErrInvalidOption
		}
		if seen[o.Label] {
			return ErrDuplicateLabel
		}
		seen[o.Label] = true
	}
	if !seen[correct] {
		return ErrCorrectNotAmongOptions
	}
	return nil
}

// checkCard validates a complete card. The text parser enforces the option
// rules while reading; structured formats rely on this for everything.
func checkCard(c Card, strictReason bool) error {
	if blank(c.Question.Description) {
		return ErrEmptyDescription
	}
	switch {
	case c.Question.HasOptions() && !c.Answer.Correct.IsSet():
		return ErrMissingCorrectOption
	case !c.Question.HasOptions() && c.Answer.Correct.IsSet():
		return ErrUnexpectedCorrect
	case c.Question.HasOptions():
		if err := checkOptions(c.Question.Options, c.Answer.Correct); err != nil {
			return err
		}
	}
	return checkReason(c, strictReason)
}

// checkReason allows an empty reason only for multiple-choice cards, whose
// correct option explains itself. Strict mode drops that allowance.
func checkReason(c Card, strictReason bool) error {
	if !blank(c.Answer.Reason) {
		return nil
	}
	if c.Answer.Correct.IsSet() && !strictReason {
		return nil
	}
	return ErrEmptyReason
}

// blank reports whether lines hold no visible text.
func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
