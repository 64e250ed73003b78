package modlgr

/*
Defines the core data types used by the logger:
  - basetype and the two byte-sized enums (Severity, LogType)
  - ModuleLevels / LevelTable: the per-module filter configuration
  - Logger: the central state object combining the level table, the file
    sink and the fallback writer
  - ModuleClient: lightweight handle bound to one module name

Enum constants and helpers live in common.go.
*/

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"
)

type basetype byte // basetype is the underlying byte-sized representation used for enums

type Severity basetype // Ordered urgency of a log call (alias for byte)
type LogType basetype  // Category of a log message (alias for byte)

// ModuleLevels maps a log type to the minimal severity required to emit it
// for one module. The TYPE_ALL key applies to every type that has no own entry.
type ModuleLevels map[LogType]Severity

// LevelTable maps module names to their levels. DEFAULT_MODULE holds the
// process-wide fallback threshold under TYPE_ALL.
type LevelTable map[string]ModuleLevels

// fileSink owns the output file handle. All writes go through its mutex so
// concurrent callers interleave at line granularity.
type fileSink struct {
	mtx    sync.Mutex
	file   *os.File
	path   string
	msgbuf bytes.Buffer // reused while building a line (guarded by mtx)
}

// Logger is the central state holder. It owns exactly one level table, one
// file sink and a fallback writer used to report errors that are not returned
// to the caller.
type Logger struct {
	sync struct {
		tblMtx  sync.RWMutex // guards levels
		fbckMtx sync.RWMutex // guards fallback writer
		clckMtx sync.RWMutex // guards clock
	}
	levels  LevelTable
	sink    fileSink
	fallbck io.Writer
	clock   func() time.Time
}

// ModuleClient represents one program part (subsystem, goroutine, etc.)
// that logs under its own module name.
//
// Clients are lightweight and intended to be created by Logger.Module().
type ModuleClient struct {
	logger *Logger
	name   string
}

// LevelMap is a fixed-size array with one entry per log type. Used for
// type display names.
type LevelMap [TYPE_LAST + 1]string
