//go:build logcolor

package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Escape sequences of the colored console variant: one color per level
// plus grey for the timestamp/location fields.
const (
	colorReset	=	"\x1b[0m"
	colorGrey	=	"\x1b[90m"
)

//nolint:gochecknoglobals // Fixed per-level colors, indexed by level value
var levelColors = [...]string{
	"\x1b[94m",	// TRACE, bright blue
	"\x1b[36m",	// DEBUG, cyan
	"\x1b[32m",	// INFO, green
	"\x1b[33m",	// WARN, yellow
	"\x1b[31m",	// ERROR, red
	"\x1b[35m",	// FATAL, magenta
}

// writerIsTerminal reports whether w is backed by a terminal. Only
// terminals get colored output - the escape sequences are cosmetic and
// must not end up in redirected streams.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (l *Logger) writeConsole(now time.Time, level Level, ts float64, file string, line int, msg string) {
	if !l.consoleTTY {
		_, _ = fmt.Fprintf(l.out, "%s %-5.5s (ts: %.6f) %s:%d: %s\n",
			now.Format(consoleTimeLayout), level, ts, file, line, msg)
		return
	}

	color := colorGrey
	if level >= LevelTrace && level <= LevelFatal {
		color = levelColors[level]
	}

	_, _ = fmt.Fprintf(l.out, "%s %s%-5.5s%s %s(ts: %.6f) %s:%d:%s %s\n",
		now.Format(consoleTimeLayout), color, level, colorReset,
		colorGrey, ts, file, line, colorReset, msg)
}
