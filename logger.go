// A small levelled logging package for Go. Independently named modules get
// their own minimal severity per log type, and all of them write timestamped
// lines to one shared output file. One process-wide logger is available via
// Instance().
package modlgr

import (
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"
)

// Creates a logger writing to the file at path (opened in append mode,
// created if missing). Returns a *FileOpenError if the file cannot be opened.
//
// Preferred usage example:
//
//	func main() {
//	    logger, err := New("/tmp/app.log")
//	    if err != nil {
//	        ...
//	    }
//	    defer logger.Close()
//	    logger.SetLogLevel("NET", SEV_NRM, TYPE_ALL)
//	    logger.Log("connected", "NET", SEV_HGH, TYPE_INF)
//	}
func New(path string) (*Logger, error) {
	l := NewUnset()
	if err := l.SetFile(path); err != nil {
		return nil, err
	}
	return l, nil
}

// Creates a logger without an output file. Filtering works as usual but
// accepted messages fail with ErrFileNotSet until SetFile() is called.
func NewUnset() *Logger {
	l := new(Logger)
	l.levels = newLevelTable()
	l.SetFallback(os.Stderr)
	l.SetClock(nil)
	return l
}

// Creates a logger with the configuration (file and level table) copied from
// other. See CopyFrom for the error semantics.
func NewFrom(other *Logger) *Logger {
	l := NewUnset()
	l.CopyFrom(other)
	return l
}

// Closes the output file. The logger stays usable: levels are kept and a new
// file can be set later.
func (l *Logger) Close() error {
	return l.sink.close()
}

// Sets the fallback output used to report errors that are not returned to the
// caller, io.Discard is used instead of nil to silently drop them.
//
// The operation is protected by mutex for thread safety.
func (l *Logger) SetFallback(f io.Writer) *Logger {
	l.sync.fbckMtx.Lock()
	defer l.sync.fbckMtx.Unlock()
	if f != nil {
		l.fallbck = f
	} else {
		l.fallbck = io.Discard
	}
	return l
}

// Sets the time source for line timestamps, nil restores time.Now.
func (l *Logger) SetClock(clock func() time.Time) *Logger {
	l.sync.clckMtx.Lock()
	defer l.sync.clckMtx.Unlock()
	if clock != nil {
		l.clock = clock
	} else {
		l.clock = time.Now
	}
	return l
}

func (l *Logger) now() time.Time {
	l.sync.clckMtx.RLock()
	defer l.sync.clckMtx.RUnlock()
	return l.clock()
}

/////////////////////////////////////////////////////////////////////////////////////////

// Opens path in append mode as the new output, closing the previous file
// first. On error the logger is left without a file.
func (l *Logger) SetFile(path string) error {
	return l.sink.open(path)
}

// Returns the path of the current output file ("" if no file is set).
func (l *Logger) File() string {
	return l.sink.getPath()
}

// Sets the minimal severity of typ messages for module. Out-of-range types
// and severities are clamped into the configurable range, so the call never
// fails. Use TYPE_ALL to set the threshold for every type without its own
// entry, and DEFAULT_MODULE to change the global fallback.
func (l *Logger) SetLogLevel(module string, sev Severity, typ LogType) *Logger {
	l.sync.tblMtx.Lock()
	defer l.sync.tblMtx.Unlock()
	l.levels.set(module, sev, typ)
	return l
}

// Removes every level of module, so it falls back to DEFAULT_MODULE. No
// errors if there is no such module.
func (l *Logger) UnsetModule(module string) *Logger {
	l.sync.tblMtx.Lock()
	defer l.sync.tblMtx.Unlock()
	l.levels.unset(module)
	return l
}

// Returns a deep copy of the level table.
func (l *Logger) LogLevels() LevelTable {
	l.sync.tblMtx.RLock()
	defer l.sync.tblMtx.RUnlock()
	return l.levels.clone()
}

// Replaces the whole level table with a copy of levels.
func (l *Logger) setLogLevels(levels LevelTable) {
	levels = levels.clone()
	l.sync.tblMtx.Lock()
	defer l.sync.tblMtx.Unlock()
	l.levels = levels
}

// True if a message of (module, sev, typ) passes the level filter.
//
// Priority: the module entry for typ, then the module TYPE_ALL entry, then the
// DEFAULT_MODULE TYPE_ALL entry. The message is accepted if the found
// threshold is not above sev.
func (l *Logger) IsWritable(module string, sev Severity, typ LogType) bool {
	l.sync.tblMtx.RLock()
	defer l.sync.tblMtx.RUnlock()
	return l.levels.writable(module, sev, typ)
}

// Copies the configuration of other into l: the output file is reopened by
// path (an error is written to the fallback and ignored) and the level table
// is replaced by a snapshot of other's one. Later changes of either logger
// do not affect the other.
func (l *Logger) CopyFrom(other *Logger) *Logger {
	if other == nil {
		l.handleLogWriteError(_ERROR_MESSAGE_COPY_FILE + ": source " + _ERROR_MESSAGE_LOGGER_IS_NIL)
		return l
	}
	if err := l.SetFile(other.File()); err != nil {
		l.handleLogWriteError(_ERROR_MESSAGE_COPY_FILE + ": " + err.Error())
	}
	l.setLogLevels(other.LogLevels())
	return l
}

/////////////////////////////////////////////////////////////////////////////////////////

// Writes message as one line if (module, sev, typ) passes the level filter.
// Filtered messages are not an error and cost only the filter check.
//
// Returns ErrFileNotSet, *TimeFormatError or the file write error. If no
// special error processing needed use Log() instead.
func (l *Logger) LogE(message, module string, sev Severity, typ LogType) error {
	if !l.IsWritable(module, sev, typ) {
		return nil
	}
	return l.sink.append(module, typ.displayName(), message, l.now())
}

// Same as LogE() but an error is written to the logger fallback instead of
// being returned.
func (l *Logger) Log(message, module string, sev Severity, typ LogType) {
	if err := l.LogE(message, module, sev, typ); err != nil {
		l.handleLogWriteError(err.Error())
	}
}

// Formats the message with fmt.Sprintf and logs it like Log(). Output longer
// than MAX_MESSAGE_LEN bytes is truncated. Nothing is formatted for filtered
// messages, and the filter is consulted only once, before formatting.
func (l *Logger) Logf(module string, sev Severity, typ LogType, format string, args ...any) {
	if !l.IsWritable(module, sev, typ) {
		return
	}
	msg := truncateMessage(fmt.Sprintf(format, args...))
	if err := l.sink.append(module, typ.displayName(), msg, l.now()); err != nil {
		l.handleLogWriteError(err.Error())
	}
}

// truncateMessage cuts s to at most MAX_MESSAGE_LEN bytes without splitting a
// UTF-8 sequence.
func truncateMessage(s string) string {
	if len(s) <= MAX_MESSAGE_LEN {
		return s
	}
	cut := MAX_MESSAGE_LEN
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// handleLogWriteError writes a one-line description to the fallback writer.
// A panicking fallback is recovered and reported to os.Stderr.
func (l *Logger) handleLogWriteError(errormsg string) {
	l.sync.fbckMtx.RLock()
	defer func() {
		if r := recover(); r != nil {
			os.Stderr.WriteString(_ERROR_MESSAGE_FALLBACK_PANIC + panicDesc(r) + "\n")
		}
		l.sync.fbckMtx.RUnlock()
	}()
	if l.fallbck != nil {
		l.fallbck.Write([]byte(errormsg + "\n"))
	}
}
