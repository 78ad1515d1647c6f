//go:build !lognop

package log

import "regexp"

// Line grammars of the two sinks. The level field is always exactly five
// characters wide, so the four-letter names carry a trailing space.
var (
	consoleLineRE	=	regexp.MustCompile(
		`^(\d{2}:\d{2}:\d{2}) (TRACE|DEBUG|INFO |WARN |ERROR|FATAL) \(ts: (\d+\.\d{6})\) ([^:]+):(\d+): (.*)$`)
	fileLineRE	=	regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (TRACE|DEBUG|INFO |WARN |ERROR|FATAL) \(ts: (\d+\.\d{6})\) ([^:]+):(\d+): (.*)$`)
)

// Submatch indexes of the grammars above
const (
	smTime	=	1
	smLevel	=	2
	smTS	=	3
	smFile	=	4
	smLine	=	5
	smMsg	=	6
)

var filterTests = []struct {
	name		string
	threshold	Level
	emit		Level
	accepted	bool
}{
	{"trace-at-trace",	LevelTrace,	LevelTrace,	true},
	{"fatal-at-trace",	LevelTrace,	LevelFatal,	true},
	{"trace-at-info",	LevelInfo,	LevelTrace,	false},
	{"debug-at-info",	LevelInfo,	LevelDebug,	false},
	{"info-at-info",	LevelInfo,	LevelInfo,	true},
	{"warn-at-info",	LevelInfo,	LevelWarn,	true},
	{"error-at-warn",	LevelWarn,	LevelError,	true},
	{"warn-at-error",	LevelError,	LevelWarn,	false},
	{"fatal-at-fatal",	LevelFatal,	LevelFatal,	true},
	{"error-at-fatal",	LevelFatal,	LevelError,	false},

	// The threshold is stored verbatim, values outside the enumeration
	// simply shift the filter
	{"fatal-above-fatal",	LevelFatal + 1,	LevelFatal,	false},
	{"trace-at-negative",	Level(-3),	LevelTrace,	true},
}
