package modlgr

import (
	"errors"
	"time"
)

const (
	// Error messages used across logger operations (used for testing).
	_ERROR_MESSAGE_FILE_NOT_SET   = "log file is not set"
	_ERROR_MESSAGE_FILE_OPEN      = "cannot open log file"
	_ERROR_MESSAGE_TIME_FORMAT    = "cannot format log time"
	_ERROR_MESSAGE_BAD_SEVERITY   = "unknown severity"
	_ERROR_MESSAGE_BAD_LOGTYPE    = "unknown log type"
	_ERROR_MESSAGE_LOGGER_IS_NIL  = "logger is nil"
	_ERROR_MESSAGE_COPY_FILE      = "copying logger definition"
	_ERROR_UNKNOWN_PANIC_TEXT     = "[no panic description]"
	_ERROR_MESSAGE_FALLBACK_PANIC = "panic writing to fallback"
)

// ErrFileNotSet is returned by writes issued before any file was configured.
var ErrFileNotSet = errors.New(_ERROR_MESSAGE_FILE_NOT_SET)

// FileOpenError reports that the output file could not be opened. Err holds
// the OS reason if there is one.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	s := _ERROR_MESSAGE_FILE_OPEN + " \"" + e.Path + "\""
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// TimeFormatError reports a timestamp that does not fit the fixed
// TIME_LAYOUT width (years outside 0000..9999). The write is dropped.
type TimeFormatError struct {
	Time time.Time
}

func (e *TimeFormatError) Error() string {
	return _ERROR_MESSAGE_TIME_FORMAT + ": " + e.Time.String()
}
