package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	names := map[Level]string{
		LevelTrace:	"TRACE",
		LevelDebug:	"DEBUG",
		LevelInfo:	"INFO",
		LevelWarn:	"WARN",
		LevelError:	"ERROR",
		LevelFatal:	"FATAL",
		Level(-1):	"UNKNOWN",
		Level(6):	"UNKNOWN",
	}

	for level, name := range names {
		assert.Equal(t, name, level.String())
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}

	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1], ordered[i])
	}
}

func TestParseLevel(t *testing.T) {
	valid := map[string]Level{
		"trace":	LevelTrace,
		"TRACE":	LevelTrace,
		"debug":	LevelDebug,
		"Info":	LevelInfo,
		"warn":	LevelWarn,
		"warning":	LevelWarn,
		"error":	LevelError,
		"ERR":	LevelError,
		"fatal":	LevelFatal,
	}

	for name, want := range valid {
		level, err := ParseLevel(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, want, level, "name %q", name)
	}

	for _, name := range []string{"", "verbose", "INFO ", "critical"} {
		_, err := ParseLevel(name)
		assert.Error(t, err, "name %q", name)
	}
}
