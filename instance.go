package modlgr

import "sync"

var (
	sharedOnce   sync.Once
	sharedLogger *Logger
)

// Instance returns the process-wide logger, creating it on the first call.
// The logger starts without an output file (see NewUnset) and lives for the
// whole process, there is no teardown. Safe for concurrent first callers:
// the logger is built exactly once.
func Instance() *Logger {
	sharedOnce.Do(func() {
		sharedLogger = NewUnset()
	})
	return sharedLogger
}
