package modlgr

/*
Module client is an abstraction for a program part (subsystem, goroutine,
library) that logs under its own module name. It carries no state but the
name and its owning logger, so it is cheap to create and safe to share
between goroutines.

The basic LogE writes a string at the provided severity and type and returns
any error encountered. All other client Log* methods are wrappers on it that
report errors to the logger fallback instead.
*/

import "errors"

// Returns a client that logs under the module name.
func (l *Logger) Module(name string) *ModuleClient {
	return &ModuleClient{logger: l, name: name}
}

// Returns the module name of the client.
func (mc *ModuleClient) Name() string {
	return mc.name
}

// Sets the minimal severity of typ messages for the client module (see
// Logger.SetLogLevel).
func (mc *ModuleClient) SetLevel(sev Severity, typ LogType) *ModuleClient {
	if mc.logger != nil {
		mc.logger.SetLogLevel(mc.name, sev, typ)
	}
	return mc
}

// True if a message with sev and typ would be written for the client module.
func (mc *ModuleClient) Writable(sev Severity, typ LogType) bool {
	return mc.logger != nil && mc.logger.IsWritable(mc.name, sev, typ)
}

// Writes s as a log message with the given severity and type. Returns an
// error if the client is orphaned or the write failed; filtered messages are
// not an error.
func (mc *ModuleClient) LogE(sev Severity, typ LogType, s string) error {
	if mc.logger == nil {
		return errors.New(_ERROR_MESSAGE_LOGGER_IS_NIL)
	}
	return mc.logger.LogE(s, mc.name, sev, typ)
}

// Same as LogE() but an error is written to the logger fallback. Orphaned
// clients silently drop messages.
func (mc *ModuleClient) Log(sev Severity, typ LogType, s string) {
	if mc.logger != nil {
		mc.logger.Log(s, mc.name, sev, typ)
	}
}

// Formats and writes a message like Logger.Logf().
func (mc *ModuleClient) Logf(sev Severity, typ LogType, format string, args ...any) {
	if mc.logger != nil {
		mc.logger.Logf(mc.name, sev, typ, format, args...)
	}
}

/////////////////////////////////////////////////////////////////////////////////////////
// Convenience type-specific helpers. These are thin wrappers around Log and
// behave like it: errors go to the logger fallback.

// Logs s as a TRC message.
func (mc *ModuleClient) Trace(sev Severity, s string) { mc.Log(sev, TYPE_TRC, s) }

// Logs s as a DBG message.
func (mc *ModuleClient) Debug(sev Severity, s string) { mc.Log(sev, TYPE_DBG, s) }

// Logs s as an INF message.
func (mc *ModuleClient) Info(sev Severity, s string) { mc.Log(sev, TYPE_INF, s) }

// Logs s as a WRN message.
func (mc *ModuleClient) Warn(sev Severity, s string) { mc.Log(sev, TYPE_WRN, s) }

// Logs s as an ERR message.
func (mc *ModuleClient) Error(sev Severity, s string) { mc.Log(sev, TYPE_ERR, s) }

// Logs e.Error() as an ERR message (nil errors are ignored).
func (mc *ModuleClient) Err(sev Severity, e error) {
	if e != nil {
		mc.Log(sev, TYPE_ERR, e.Error())
	}
}
