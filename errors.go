package log

import "github.com/pkg/errors"

// ErrNotOpened is returned by [CloseFile] when the logger does not own an
// open log file, either because [OpenFile] was never called or because the
// file was already closed.
var ErrNotOpened = errors.New("log file already closed/not opened yet")
