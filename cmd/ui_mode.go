package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/abhisek/quizdeck/internal/config"
)

// uiModeDecision captures which front-end to start.
type uiModeDecision struct {
	useTUI  bool
	warning string
}

// isTerminal reports whether a stream is a TTY.
var isTerminal = defaultIsTerminal

// resolveUIMode picks the front-end. The TUI needs a terminal on both ends.
func resolveUIMode(mode string, stdin io.Reader, stdout io.Writer) (uiModeDecision, error) {
	interactive := isTerminal(stdin) && isTerminal(stdout)
	switch mode {
	case "", config.UIAuto:
		return uiModeDecision{useTUI: interactive}, nil
	case config.UITUI:
		if interactive {
			return uiModeDecision{useTUI: true}, nil
		}
		return uiModeDecision{
			useTUI:  false,
			warning: "TUI requested but stdin/stdout is not a TTY; falling back to plain mode.",
		}, nil
	case config.UIPlain:
		return uiModeDecision{useTUI: false}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|tui|plain)", mode)
	}
}

// defaultIsTerminal inspects a stream for TTY support.
func defaultIsTerminal(stream any) bool {
	if stream == nil {
		return false
	}
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stream.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
