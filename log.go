package log

import (
	"io"
	"sync"
)

//
// Default logger object
//

//nolint:gochecknoglobals // Process-wide default logger
var std = New()

// Default returns the process-wide default Logger used by the package-level
// functions. Programs that prefer explicit wiring can ignore it and pass
// their own [New] instance around instead.
func Default() *Logger {
	return std
}

// SetLevel sets the severity threshold: messages below level are discarded
// before any locking or formatting occurs. The value is stored verbatim
// without validation, so a threshold above [LevelFatal] silences every
// message and a negative one admits every message.
func SetLevel(level Level) {
	std.SetLevel(level)
}

// SetQuiet enables or disables quiet mode. When quiet mode is enabled, the
// console sink is suppressed; the file sink is not affected.
func SetQuiet(quiet bool) {
	std.SetQuiet(quiet)
}

// SetOutput replaces the console sink (the standard error stream by
// default) with w.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetFile sets the file sink. The caller retains ownership of w and is
// responsible for closing it; the facility only writes and flushes. Passing
// nil removes the file sink. See [OpenFile] for a logger-owned alternative.
func SetFile(w io.Writer) {
	std.SetFile(w)
}

// SetLock sets an external locker acquired around each accepted emit, for
// coordination with critical sections the embedding program owns. The
// locker is acquired after and released before the facility's own internal
// mutex. Passing nil disables external locking. See [LockFunc] to adapt a
// plain function.
func SetLock(lk sync.Locker) {
	std.SetLock(lk)
}

// OpenFile opens the named file for appending, creating it if necessary,
// and installs it as the file sink. Unlike a sink passed to [SetFile], the
// opened file is owned by the logger and must be released with [CloseFile].
func OpenFile(path string) error {
	return std.OpenFile(path)
}

// CloseFile removes the file sink installed by [OpenFile] and closes the
// underlying file. It returns [ErrNotOpened] if the logger does not own an
// open file.
//
// NOTE: CloseFile must be called before exiting the program if [OpenFile]
// was used, there is no finalizer.
func CloseFile() error {
	return std.CloseFile()
}

// Trace writes a TRACE message to the log. Arguments are handled in the
// manner of [fmt.Sprintf].
func Trace(format string, args ...any) {
	std.Output(LevelTrace, 2, format, args...)
}

// Debug writes a DEBUG message to the log.
func Debug(format string, args ...any) {
	std.Output(LevelDebug, 2, format, args...)
}

// Info writes an INFO message to the log.
func Info(format string, args ...any) {
	std.Output(LevelInfo, 2, format, args...)
}

// Warn writes a WARN message to the log.
func Warn(format string, args ...any) {
	std.Output(LevelWarn, 2, format, args...)
}

// Error writes an ERROR message to the log.
func Error(format string, args ...any) {
	std.Output(LevelError, 2, format, args...)
}

// Fatal writes a FATAL message to the log. FATAL is only the highest
// severity: unlike the standard library logger, Fatal does not terminate
// the process.
func Fatal(format string, args ...any) {
	std.Output(LevelFatal, 2, format, args...)
}

// Output writes a message with an explicit level and caller depth through
// the default logger. See [Logger.Output].
func Output(level Level, calldepth int, format string, args ...any) {
	std.Output(level, calldepth+1, format, args...)
}
