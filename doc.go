/*
Package log is a minimal leveled logger intended to be embedded directly
into other programs. It prints timestamped messages to the standard error
stream and can mirror them to a single log file.

Package key features are:

  - Six ordered severity levels: TRACE, DEBUG, INFO, WARN, ERROR, FATAL
  - Adjustable severity threshold, cheap rejection of filtered messages
  - Optional file sink, flushed after every line for crash durability
  - Quiet mode suppressing the console sink while keeping the file sink
  - Optional external locker for cross-subsystem lock coordination
  - Concurrency safe: one internal mutex fully serializes all log writes
  - Logging calls never fail, never panic and never exit the process
  - Optional ANSI colors on terminals (logcolor build tag) and a stripped
    no-op build profile (lognop build tag)

# Basic usage

	import "github.com/chierqj/simple-log"

	func main() {
		log.SetLevel(log.LevelInfo)

		if err := log.OpenFile("/tmp/test-app.log"); err != nil {
			panic(err)
		}
		defer log.CloseFile()

		log.Trace("not logged, below the INFO threshold")
		log.Info("listening on %s", addr)
		log.Warn("retrying in %v", delay)
		log.Error("cannot load state: %v", err)
	}

Each accepted call produces one console line of the form

	23:59:01 INFO  (ts: 1756659541.042415) main.go:12: listening on :8080

and one file line carrying the full date

	2026-08-31 23:59:01 INFO  (ts: 1756659541.042415) main.go:12: listening on :8080

# Important notes

  - The package-level functions use a process-wide default logger; programs
    that prefer explicit wiring can create their own instance with [New]
  - A file sink passed to [SetFile] stays caller-owned: the facility only
    writes and flushes it, closing is the caller's job. [OpenFile] is the
    logger-owned alternative
  - Setters and emits may run concurrently; the threshold and quiet flag
    are read atomically, sink and locker changes take the internal mutex
*/
package log
