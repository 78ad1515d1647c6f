package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Private constants
const (
	// Time layouts of the console and file sinks
	consoleTimeLayout	=	"15:04:05"
	fileTimeLayout		=	"2006-01-02 15:04:05"

	// Value reported when the caller location cannot be resolved
	unknownFile	=	"???"
)

//
// Public types
//

// LockFunc adapts an acquire/release function to the [sync.Locker]
// interface expected by [Logger.SetLock]. The function is called with true
// to acquire and false to release. Any state the function needs should be
// captured in its closure.
type LockFunc func(lock bool)

func (f LockFunc) Lock()	{ f(true) }
func (f LockFunc) Unlock()	{ f(false) }

// A Logger owns the configuration of the logging facility: the console and
// file sinks, the severity threshold, the quiet flag and an optional
// external locker. A single internal mutex fully serializes all accepted
// emit calls, so a Logger can be used simultaneously from multiple
// goroutines without producing interleaved lines.
//
// Logging methods never fail observably: write errors are swallowed, no
// method returns an error and nothing terminates the process.
type Logger struct {
	mu		sync.Mutex	// serializes every accepted emit
	level	atomic.Int32
	quiet	atomic.Bool

	// Fields below are guarded by mu
	out	io.Writer	// console sink, never nil
	file	io.Writer	// file sink, nil when not configured
	ext	sync.Locker	// external locker, nil when not configured

	consoleTTY	bool	// console sink is a terminal, used by color builds

	// Set by OpenFile, cleared by SetFile and CloseFile
	ownedFile	*os.File
}

// New creates a Logger writing to the standard error stream with the
// threshold set to [LevelTrace], no file sink, quiet mode disabled and no
// external locker.
func New() *Logger {
	return &Logger{
		out:		os.Stderr,
		consoleTTY:	writerIsTerminal(os.Stderr),
	}
}

// SetLevel calls [SetLevel] on the l object.
func (l *Logger) SetLevel(level Level) {
	if !enabled {
		return
	}
	l.level.Store(int32(level))
}

// Level returns the current severity threshold.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// SetQuiet calls [SetQuiet] on the l object.
func (l *Logger) SetQuiet(quiet bool) {
	if !enabled {
		return
	}
	l.quiet.Store(quiet)
}

// SetOutput calls [SetOutput] on the l object.
func (l *Logger) SetOutput(w io.Writer) {
	if !enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.out = w
	l.consoleTTY = writerIsTerminal(w)
}

// SetFile calls [SetFile] on the l object.
func (l *Logger) SetFile(w io.Writer) {
	if !enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Release a file the logger opened itself, it has no other way to be
	// closed once the sink is replaced
	if l.ownedFile != nil {
		_ = l.ownedFile.Close()
		l.ownedFile = nil
	}

	// The sink is caller-owned now
	l.file = w
}

// SetLock calls [SetLock] on the l object.
func (l *Logger) SetLock(lk sync.Locker) {
	if !enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.ext = lk
}

// Output writes a message with the given level to the configured sinks.
// The caller location is resolved calldepth stack frames above Output, in
// the manner of [runtime.Caller]. Arguments are formatted into format as
// [fmt.Sprintf] does. Messages below the current threshold are rejected
// before any time capture, formatting or locking takes place.
//
// Output is the entry point of the leveled convenience methods; it only
// needs to be called directly by wrappers that supply their own calldepth.
func (l *Logger) Output(level Level, calldepth int, format string, args ...any) {
	if !enabled {
		return
	}

	// Fast-reject path - must stay free of locks
	if level < Level(l.level.Load()) {
		return
	}

	// A single capture provides both the human-readable wall-clock fields
	// and the high-resolution (ts: ...) value
	now := time.Now()
	ts := float64(now.UnixNano()) / 1e9

	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file, line = unknownFile, 0
	}
	file = filepath.Base(file)

	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ext != nil {
		// Held strictly inside the internal critical section and released
		// before the internal mutex
		l.ext.Lock()
		defer l.ext.Unlock()
	}

	if !l.quiet.Load() {
		l.writeConsole(now, level, ts, file, line, msg)
	}

	if l.file != nil {
		// Write errors are swallowed: logging must not be able to break
		// the host application
		_, _ = fmt.Fprintf(l.file, "%s %-5.5s (ts: %.6f) %s:%d: %s\n",
			now.Format(fileTimeLayout), level, ts, file, line, msg)
		flushSink(l.file)
	}
}

// Trace calls [Trace] on the l object.
func (l *Logger) Trace(format string, args ...any) {
	l.Output(LevelTrace, 2, format, args...)
}

// Debug calls [Debug] on the l object.
func (l *Logger) Debug(format string, args ...any) {
	l.Output(LevelDebug, 2, format, args...)
}

// Info calls [Info] on the l object.
func (l *Logger) Info(format string, args ...any) {
	l.Output(LevelInfo, 2, format, args...)
}

// Warn calls [Warn] on the l object.
func (l *Logger) Warn(format string, args ...any) {
	l.Output(LevelWarn, 2, format, args...)
}

// Error calls [Error] on the l object.
func (l *Logger) Error(format string, args ...any) {
	l.Output(LevelError, 2, format, args...)
}

// Fatal calls [Fatal] on the l object.
func (l *Logger) Fatal(format string, args ...any) {
	l.Output(LevelFatal, 2, format, args...)
}

// flushSink pushes buffered data of the file sink down to the OS, so each
// line survives a crash immediately after the emit returns. Flush errors
// are swallowed like write errors.
func flushSink(w io.Writer) {
	switch s := w.(type) {
	case interface{ Sync() error }:
		_ = s.Sync()
	case interface{ Flush() error }:
		_ = s.Flush()
	}
}
