package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netroute/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "": slog.LevelInfo, "INFO": slog.LevelInfo,
		"warn": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrBadLevel)
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	c := logging.Defaults()
	c.Format = "json"
	c.Level = "warn"

	l, closer, err := logging.New(c, &buf)
	require.NoError(t, err)
	defer closer.Close()

	l.Info("dropped")
	l.Warn("kept", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.EqualValues(t, 3, rec["n"])
}

func TestNew_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netroute.log")
	c := logging.Defaults()
	c.File = path

	l, closer, err := logging.New(c, nil)
	require.NoError(t, err)
	l.Info("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}

func TestNew_BadFormat(t *testing.T) {
	c := logging.Defaults()
	c.Format = "xml"
	_, _, err := logging.New(c, &bytes.Buffer{})
	assert.ErrorIs(t, err, logging.ErrBadFormat)
}
