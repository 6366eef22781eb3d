package plainui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/abhisek/quizdeck/internal/session"
)

// Run plays s reading keys from in and drawing to out. When in is a
// terminal it is switched to raw mode for the duration of the call and
// restored on every exit path.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) (err error) {
	raw := false
	if fd, ok := fdOf(in); ok && IsTerminal(fd) {
		guard, gerr := MakeRaw(fd)
		if gerr != nil {
			return gerr
		}
		defer func() {
			err = errors.Join(err, guard.Restore())
		}()
		raw = true
	}

	redraw := false
	if fd, ok := fdOf(out); ok {
		redraw = IsTerminal(fd)
	}

	surf := NewSurface(out, SurfaceOptions{Raw: raw, Clear: redraw})
	return s.Run(ctx, NewSource(in), surf)
}

func fdOf(v any) (int, bool) {
	if f, ok := v.(*os.File); ok {
		return int(f.Fd()), true
	}
	return 0, false
}
