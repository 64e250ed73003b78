package modlgr

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildTextLine(t *testing.T) {
	tests := []struct {
		name    string
		module  string
		message string
		want    string
	}{
		{"short", "MOD1", "some message", "2024-01-01 12:00:00 MOD1  [INF]\tsome message\n"},
		{"exact", "ABCDEF", "m", "2024-01-01 12:00:00 ABCDEF[INF]\tm\n"},
		{"long", "NETWORKING", "m", "2024-01-01 12:00:00 NETWOR[INF]\tm\n"},
		{"empty", "", "", "2024-01-01 12:00:00       [INF]\t\n"},
		{"runes", "ДРУГ你好世界", "x", "2024-01-01 12:00:00 ДРУГ你好[INF]\tx\n"},
		{"no_escaping", "M", "a\tb\nc", "2024-01-01 12:00:00 M     [INF]\ta\tb\nc\n"},
	}
	outBuffer := &bytes.Buffer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := buildTextLine(outBuffer, tt.module, "INF", tt.message, testTime)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, outBuffer.String())
		})
	}
}

func Test_buildTextLine_TimeFormatError(t *testing.T) {
	for _, year := range []int{10000, -1} {
		stamp := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		err := buildTextLine(&bytes.Buffer{}, "M", "INF", "m", stamp)
		var terr *TimeFormatError
		if assert.ErrorAs(t, err, &terr) {
			assert.Equal(t, stamp, terr.Time)
			assert.ErrorContains(t, err, _ERROR_MESSAGE_TIME_FORMAT)
		}
	}
	assert.NoError(t, buildTextLine(&bytes.Buffer{}, "M", "INF", "m", time.Date(9999, 12, 31, 23, 59, 59, 0, time.Local)))
}

func Test_fileSink_open(t *testing.T) {
	dir := t.TempDir()
	t.Run("ok_and_append", func(t *testing.T) {
		path := filepath.Join(dir, "a.log")
		require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))
		var s fileSink
		assert.NoError(t, s.open(path))
		assert.Equal(t, path, s.getPath())
		assert.NoError(t, s.append("M", "INF", "new", testTime))
		assert.NoError(t, s.close())
		assert.Equal(t, []string{"old", "2024-01-01 12:00:00 M     [INF]\tnew"}, readLines(t, path))
	})
	t.Run("directory", func(t *testing.T) {
		var s fileSink
		err := s.open(dir)
		var ferr *FileOpenError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, dir, ferr.Path)
		assert.NotNil(t, ferr.Err)
		assert.ErrorContains(t, err, _ERROR_MESSAGE_FILE_OPEN)
		assert.Empty(t, s.getPath())
	})
	t.Run("missing_parent", func(t *testing.T) {
		var s fileSink
		err := s.open(filepath.Join(dir, "no", "such", "dir", "x.log"))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})
	t.Run("reopen_closes_previous", func(t *testing.T) {
		var s fileSink
		require.NoError(t, s.open(filepath.Join(dir, "first.log")))
		first := s.file
		require.NoError(t, s.open(filepath.Join(dir, "second.log")))
		assert.Error(t, first.Close()) // already closed by the second open
		assert.Equal(t, filepath.Join(dir, "second.log"), s.getPath())
		s.close()
	})
	t.Run("failed_reopen_leaves_no_file", func(t *testing.T) {
		var s fileSink
		require.NoError(t, s.open(filepath.Join(dir, "third.log")))
		assert.Error(t, s.open(dir))
		assert.Empty(t, s.getPath())
		assert.ErrorIs(t, s.append("M", "INF", "m", testTime), ErrFileNotSet)
	})
}

func Test_fileSink_close(t *testing.T) {
	var s fileSink
	assert.NoError(t, s.close())
	require.NoError(t, s.open(filepath.Join(t.TempDir(), "c.log")))
	assert.NoError(t, s.close())
	assert.NoError(t, s.close())
	assert.Empty(t, s.getPath())
}

func Test_fileSink_append(t *testing.T) {
	t.Run("not_set", func(t *testing.T) {
		var s fileSink
		assert.ErrorIs(t, s.append("M", "INF", "m", testTime), ErrFileNotSet)
	})
	t.Run("time_error_writes_nothing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "t.log")
		var s fileSink
		require.NoError(t, s.open(path))
		defer s.close()
		err := s.append("M", "INF", "m", time.Date(12345, 1, 1, 0, 0, 0, 0, time.Local))
		assert.IsType(t, &TimeFormatError{}, err)
		assert.Empty(t, readLines(t, path))
	})
}

func Test_FileOpenError(t *testing.T) {
	reason := errors.New("reason")
	err := &FileOpenError{Path: "/x", Err: reason}
	assert.Equal(t, _ERROR_MESSAGE_FILE_OPEN+" \"/x\": reason", err.Error())
	assert.ErrorIs(t, err, reason)
	assert.Equal(t, _ERROR_MESSAGE_FILE_OPEN+" \"/x\"", (&FileOpenError{Path: "/x"}).Error())
}
