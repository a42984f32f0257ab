package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewLogger_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "warn", "json")
	l.Info("dropped")
	l.Warn("kept", "key", "download")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "download", rec["key"])
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ligonsite.log")
	l, closeFn, err := Open(path, "debug", "text")
	require.NoError(t, err)
	l.Debug("navigate", "key", "docs")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "key=docs")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, closeFn, err := Open("", "debug", "text")
	require.NoError(t, err)
	l.Info("nothing")
	assert.NoError(t, closeFn())
}
