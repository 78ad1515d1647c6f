package log

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log message. Levels are ordered by
// increasing importance, so a message is accepted when its level is greater
// than or equal to the logger threshold set with [SetLevel].
type Level int

// Supported severity levels
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

//nolint:gochecknoglobals // Fixed display names, indexed by level value
var levelNames = [...]string{
	"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL",
}

// String returns the uppercase display name of the level. Values outside
// the supported range are rendered as "UNKNOWN" - such values are legal as
// a threshold (see [SetLevel]) but have no name of their own.
func (l Level) String() string {
	if l < LevelTrace || l > LevelFatal {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a level name to the corresponding [Level] value.
// The match is case-insensitive, "warning" and "err" are accepted as
// aliases. An unrecognized name causes an error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}

	return LevelTrace, errors.Errorf("unknown log level %q", name)
}
