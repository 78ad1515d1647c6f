package log

import (
	"os"

	"github.com/pkg/errors"
)

// Private constants
const defaultPermMode = 0o644

// OpenFile calls [OpenFile] on the l object.
func (l *Logger) OpenFile(path string) error {
	if !enabled {
		return nil
	}

	fd, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, defaultPermMode)
	if err != nil {
		return errors.Wrap(err, "cannot open log file")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Release a file opened earlier, its close error cannot be reported
	// meaningfully from here
	if l.ownedFile != nil {
		_ = l.ownedFile.Close()
	}

	l.file = fd
	l.ownedFile = fd

	return nil
}

// CloseFile calls [CloseFile] on the l object.
func (l *Logger) CloseFile() error {
	if !enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Check for log file already closed
	if l.ownedFile == nil {
		return ErrNotOpened
	}

	fd := l.ownedFile
	l.file = nil
	l.ownedFile = nil

	if err := fd.Close(); err != nil {
		return errors.Wrap(err, "cannot close log file")
	}

	// OK
	return nil
}
