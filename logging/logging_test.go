package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   *string
		want slog.Level
	}{
		{nil, slog.LevelInfo},
		{ptr("debug"), slog.LevelDebug},
		{ptr("INFO"), slog.LevelInfo},
		{ptr("Warn"), slog.LevelWarn},
		{ptr("ERROR"), slog.LevelError},
		{ptr("verbose"), slog.LevelInfo},
	}
	for _, tt := range tests {
		name := "nil"
		if tt.in != nil {
			name = *tt.in
		}
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromString(tt.in))
		})
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var info, debug bytes.Buffer
	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	logger.Debug("request sent", "path", "v1/accounts")
	logger.Info("account added", "accountId", "42")

	assert.NotContains(t, info.String(), "request sent")
	assert.Contains(t, info.String(), "account added")
	assert.Equal(t, 2, strings.Count(debug.String(), "\n"))
}

func TestMultiHandlerWithAttrsAndGroup(t *testing.T) {
	var a, b bytes.Buffer
	logger := slog.New(NewMultiHandler(
		slog.NewJSONHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)).With("module", "genability").WithGroup("call")

	logger.Info("done", "status", 200)

	for _, buf := range []*bytes.Buffer{&a, &b} {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "genability", rec["module"])
		assert.Equal(t, map[string]any{"status": 200.0}, rec["call"])
	}
}

func TestMultiHandlerDisabled(t *testing.T) {
	h := NewMultiHandler(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandlerKeepsGoingOnError(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		failingHandler{slog.NewTextHandler(&bytes.Buffer{}, nil)},
		slog.NewTextHandler(&buf, nil),
	)
	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelInfo, "hello", 0))
	assert.EqualError(t, err, "disk full")
	assert.Contains(t, buf.String(), "hello")
}

func TestOpenFileHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genability.log")
	h, f, err := OpenFileHandler(path, slog.LevelDebug)
	require.NoError(t, err)

	slog.New(h).Debug("written")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)

	_, _, err = OpenFileHandler(filepath.Join(path, "not-a-dir", "x.log"), slog.LevelDebug)
	assert.Error(t, err)
}

var testTime = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
