package modlgr

/*********************************************************************************
io.Writer adapter

Stream returns an io.Writer bound to (module, sev, typ) so a line can be
produced with fmt.Fprint* or handed to code that only knows io.Writer:

	fmt.Fprintf(logger.Stream("NET", SEV_NRM, TYPE_WRN), "disk low: %d%%", percent)

The filter is checked once, when the stream is created. A filtered stream
accepts and drops everything.
*/

import (
	"io"
	"strings"
)

// LogStream writes every Write() payload as one log line.
type LogStream struct {
	logger *Logger
	module string
	sev    Severity
	typ    LogType
}

// Returns an io.Writer that logs each written payload as one line of module
// with sev and typ, or io.Discard if such messages are filtered out.
func (l *Logger) Stream(module string, sev Severity, typ LogType) io.Writer {
	if !l.IsWritable(module, sev, typ) {
		return io.Discard
	}
	return &LogStream{logger: l, module: module, sev: sev, typ: typ}
}

// Returns a stream for the client module (see Logger.Stream).
func (mc *ModuleClient) Stream(sev Severity, typ LogType) io.Writer {
	if mc.logger == nil {
		return io.Discard
	}
	return mc.logger.Stream(mc.name, sev, typ)
}

// Write implements io.Writer. One trailing line break of p is dropped since
// the sink terminates every line itself. On success it returns n=len(p),
// otherwise 0 and the write error. Empty payloads are a no-op.
func (ls *LogStream) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	msg := strings.TrimSuffix(string(p), "\n")
	msg = strings.TrimSuffix(msg, "\r")
	err = ls.logger.sink.append(ls.module, ls.typ.displayName(), msg, ls.logger.now())
	if err == nil {
		n = len(p)
	}
	return n, err
}
