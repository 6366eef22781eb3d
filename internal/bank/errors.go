package bank

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by FormatError.
var (
	ErrEmptyBank              = errors.New("bank is empty")
	ErrMissingHeader          = errors.New("missing Question header")
	ErrInvalidOption          = errors.New("invalid option line")
	ErrTooManyOptions         = errors.New("too many options")
	ErrDuplicateLabel         = errors.New("duplicate option label")
	ErrCorrectNotAmongOptions = errors.New("correct option not among options")
	ErrExpectedCorrectOption  = errors.New("expected a single correct option letter")
	ErrPrematureEnd           = errors.New("block ended prematurely")
	ErrEmptyDescription       = errors.New("empty question description")
	ErrEmptyReason            = errors.New("empty reason")
	ErrMissingCorrectOption   = errors.New("options given without a correct option")
	ErrUnexpectedCorrect      = errors.New("correct option given without options")
	ErrMalformedDocument      = errors.New("malformed document")
	ErrUnsupportedVersion     = errors.New("unsupported document version")
	ErrNotRepresentable       = errors.New("card cannot be written in text form")
)

// FormatError reports a malformed bank document.
type FormatError struct {
	Block  int    // 1-based block (or card) number, 0 for document-level errors
	Line   int    // 1-based document line, 0 when not tied to a line
	Detail string // optional extra context, e.g. the offending line
	Err    error  // one of the Err* sentinels above
}

func (e *FormatError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	switch {
	case e.Block > 0 && e.Line > 0:
		return fmt.Sprintf("block %d, line %d: %s", e.Block, e.Line, msg)
	case e.Block > 0:
		return fmt.Sprintf("block %d: %s", e.Block, msg)
	default:
		return msg
	}
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError reports a bank file that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read bank %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
