package modlgr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const panicStr = "panic generated in writer"

type PanicWriter struct{}

func (p *PanicWriter) Write(b []byte) (int, error) { panic(panicStr) }

type ErrorWriter struct{}

func (e *ErrorWriter) Write(b []byte) (int, error) { return 0, errors.New("error generated in writer") }

type FakeWriter struct {
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string { return string(f.buffer) }
func (f *FakeWriter) Clear()         { f.buffer = f.buffer[:0] }

var testTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)

func fixedClock() time.Time { return testTime }

// Creates a logger writing to a fresh file in a temporary directory, with a
// fixed clock and an in-memory fallback.
func newTestLogger(t *testing.T) (*Logger, string, *FakeWriter) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	ferr := &FakeWriter{}
	l.SetFallback(ferr).SetClock(fixedClock)
	return l, path, ferr
}

// Returns the lines of a log file without the terminating line break.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
