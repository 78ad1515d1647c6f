//go:build !logcolor

package log

import (
	"fmt"
	"io"
	"time"
)

func writerIsTerminal(io.Writer) bool { return false }

func (l *Logger) writeConsole(now time.Time, level Level, ts float64, file string, line int, msg string) {
	_, _ = fmt.Fprintf(l.out, "%s %-5.5s (ts: %.6f) %s:%d: %s\n",
		now.Format(consoleTimeLayout), level, ts, file, line, msg)
}
