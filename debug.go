package pullrefresh

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug lines. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug logging. When enabled, state
// transitions, settle decisions, and ignored re-entrant calls are printed
// to stderr.
func (l *Layout) SetDebugMode(enabled bool) {
	l.debug = enabled
}

// debugf prints a tagged line to stderr when debug mode is on.
func (l *Layout) debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[pullrefresh] "+format+"\n", args...)
}

// debugState logs a state transition with the current offset.
func (l *Layout) debugState(from, to State) {
	l.debugf("state: %s -> %s | offset: %d/%d | refreshing: %t",
		from, to, l.offset, l.m.maxDrag, l.refreshing)
}

// reentrant reports whether op arrived from inside a header callback. Such
// calls are ignored; in debug mode a warning is printed.
func (l *Layout) reentrant(op string) bool {
	if l.inNotify == 0 {
		return false
	}
	if l.debug {
		_, _ = fmt.Fprintf(debugOut, "[pullrefresh] warning: %s called from a header callback, ignored\n", op)
	}
	return true
}
