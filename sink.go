package modlgr

/*
File sink: owns the output file and turns accepted messages into lines of
the form

	2024-01-01 12:00:00 MOD1  [INF]	some message

Every line is built and written while holding the sink mutex, so lines of
concurrent callers never interleave.
*/

import (
	"bytes"
	"os"
	"time"
)

// open closes the current file (if any) and opens path for appending. On
// failure the sink is left without a file and a *FileOpenError is returned.
func (s *fileSink) open(path string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.closeFile()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	s.file = f
	s.path = path
	return nil
}

// getPath returns the path of the currently opened file ("" if none).
func (s *fileSink) getPath() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.path
}

// close closes the file if it is open. Safe to call repeatedly.
func (s *fileSink) close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.closeFile()
}

// closeFile must be called with mtx held.
func (s *fileSink) closeFile() (err error) {
	if s.file != nil {
		err = s.file.Close()
		s.file = nil
		s.path = ""
	}
	return err
}

// append writes one formatted line. os.File is unbuffered, so the single Write
// call is also the flush.
func (s *fileSink) append(module, typename, message string, now time.Time) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.file == nil {
		return ErrFileNotSet
	}
	if err := buildTextLine(&s.msgbuf, module, typename, message, now); err != nil {
		return err
	}
	_, err := s.msgbuf.WriteTo(s.file)
	return err
}

// buildTextLine resets outBuffer and fills it with one complete output line.
func buildTextLine(outBuffer *bytes.Buffer, module, typename, message string, now time.Time) error {
	outBuffer.Reset()
	stamp := now.Format(TIME_LAYOUT)
	if len(stamp) != len(TIME_LAYOUT) {
		return &TimeFormatError{Time: now}
	}
	outBuffer.WriteString(stamp)
	outBuffer.WriteByte(' ')
	writeModuleField(outBuffer, module)
	outBuffer.WriteByte('[')
	outBuffer.WriteString(typename)
	outBuffer.WriteString("]\t")
	outBuffer.WriteString(message)
	outBuffer.WriteByte('\n')
	return nil
}

// writeModuleField writes the module name left-justified in a column of
// MODULE_FIELD_LEN runes, cutting longer names (invalid UTF-8 becomes U+FFFD).
func writeModuleField(outBuffer *bytes.Buffer, module string) {
	width := 0
	for _, r := range module {
		if width == MODULE_FIELD_LEN {
			break
		}
		outBuffer.WriteRune(r)
		width++
	}
	for ; width < MODULE_FIELD_LEN; width++ {
		outBuffer.WriteByte(' ')
	}
}
