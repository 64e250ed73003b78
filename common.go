package modlgr

/*
Package-wide constants, enums and helper utilities used by the logger:
  - default values
  - enums for severities and log types with their display names
  - clamping (normalization) helpers
  - name parsers used by configuration front-ends
*/

import (
	"errors"
	"strings"
)

const (
	// Severity values, from the quietest to the loudest. SEV_NULL and SEV_NO are
	// bounds: configured thresholds are always clamped to SEV_MIN..SEV_HGH.
	SEV_NULL Severity = iota
	SEV_MIN
	SEV_LOW
	SEV_NRM
	SEV_HGH
	SEV_MAX
	SEV_NO
)

const (
	// Log type values. TYPE_NULL and TYPE_LAST are bounds, TYPE_ALL is the
	// wildcard key meaning "every type without its own entry".
	TYPE_NULL LogType = iota
	TYPE_TRC
	TYPE_DBG
	TYPE_INF
	TYPE_WRN
	TYPE_ERR
	TYPE_ALL
	TYPE_LAST
)

const (
	// Default values for the short init forms
	DEFAULT_MODULE   = "ALL"   // reserved module holding the global fallback
	DEFAULT_SEVERITY = SEV_MIN // threshold installed for DEFAULT_MODULE/TYPE_ALL
	DEFAULT_TYPENAME = "???"   // display name for types without one
	MAX_MESSAGE_LEN  = 5000    // Logf output is truncated to this many bytes
	MODULE_FIELD_LEN = 6       // module column width in the output line
	TIME_LAYOUT      = "2006-01-02 15:04:05"
)

// Short names written into the output line (only TRC..ERR are ever written)
var TypeShortNames = &LevelMap{
	"NULLTYPE", //TYPE_NULL
	"TRC",      //TYPE_TRC
	"DBG",      //TYPE_DBG
	"INF",      //TYPE_INF
	"WRN",      //TYPE_WRN
	"ERR",      //TYPE_ERR
	"ALL",      //TYPE_ALL
	"LASTTYPE", //TYPE_LAST
}

var severityNames = [...]string{
	"NULL", //SEV_NULL
	"MIN",  //SEV_MIN
	"LOW",  //SEV_LOW
	"NRM",  //SEV_NRM
	"HGH",  //SEV_HGH
	"MAX",  //SEV_MAX
	"NO",   //SEV_NO
}

// Generic byte clamping helper: values at or below lbound become lbound+1,
// values at or above ubound become ubound-1.
func clamp_byte[T ~byte](val, lbound, ubound T) T {
	if val >= ubound {
		return ubound - 1
	} else if val <= lbound {
		return lbound + 1
	}
	return val
}

// Clamps a log type into (TYPE_NULL, TYPE_LAST)
func normType(typ LogType) LogType {
	return clamp_byte(typ, TYPE_NULL, TYPE_LAST)
}

// Clamps a severity into (SEV_NULL, SEV_MAX)
func normSeverity(sev Severity) Severity {
	return clamp_byte(sev, SEV_NULL, SEV_MAX)
}

// String returns the short severity name ("NRM") or "???" if out of range.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return DEFAULT_TYPENAME
}

// String returns the short type name ("INF") or "???" if out of range.
func (t LogType) String() string {
	if t <= TYPE_LAST {
		return TypeShortNames[t]
	}
	return DEFAULT_TYPENAME
}

// displayName returns the name written to the output line. Only real message
// types (TRC..ERR) have one, the rest is rendered as DEFAULT_TYPENAME.
func (t LogType) displayName() string {
	if t > TYPE_NULL && t < TYPE_ALL {
		return TypeShortNames[t]
	}
	return DEFAULT_TYPENAME
}

// ParseSeverity converts a short severity name (case-insensitive) to Severity.
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return SEV_NULL, errors.New(_ERROR_MESSAGE_BAD_SEVERITY + ": `" + s + "`")
}

// ParseLogType converts a short type name (case-insensitive) to LogType.
// "ALLLVL" is accepted as an alias for "ALL".
func ParseLogType(s string) (LogType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "ALLLVL" {
		return TYPE_ALL, nil
	}
	for i, n := range TypeShortNames {
		if n == name {
			return LogType(i), nil
		}
	}
	return TYPE_NULL, errors.New(_ERROR_MESSAGE_BAD_LOGTYPE + ": `" + s + "`")
}

// Converts a panic value into a compact readable string (used when
// translating panics of a fallback writer into diagnostics)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
