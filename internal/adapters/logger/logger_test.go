package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/testbridge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing to a buffer without ANSI codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple message", msg: "some message", goldenName: "info_basic"},
		{name: "empty message", msg: "", goldenName: "info_empty"},
		{name: "multiline message", msg: "line1\nline2", goldenName: "info_multiline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{name: "simple warning", msg: "some warning", goldenName: "warn_basic"},
		{name: "advisory", msg: "output directory not found", goldenName: "warn_advisory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Warn(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Debug(t *testing.T) {
	t.Run("hidden at info level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.Debug("span locate took 3ms")

		g := goldie.New(t)
		g.Assert(t, "debug_disabled", buf.Bytes())
	})

	t.Run("shown at debug level", func(t *testing.T) {
		lg, buf := newTestLogger(t)
		lg.SetLevel(slog.LevelDebug)
		lg.Debug("span locate took 3ms")

		g := goldie.New(t)
		g.Assert(t, "debug_enabled", buf.Bytes())
	})
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline standard error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"),
			goldenName: "error_multiline_std",
		},
		{
			name:       "zerr chain",
			err:        zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			goldenName: "error_chain",
		},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(errors.New("permission denied"), "staleness check failed"),
				"source_root", "src",
			),
			goldenName: "error_metadata",
		},
		{
			name:       "metadata on standard error",
			err:        zerr.With(errors.New("boom"), "path", "src/a.ts"),
			goldenName: "error_metadata_std",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("located output")
	lg.Warn("multiple projects")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "INFO", first["level"])
	assert.Equal(t, "located output", first["msg"])
	assert.Equal(t, "WARN", second["level"])
}

func TestLogger_SetJSON_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(zerr.With(zerr.New("rebuild failed"), "exit_code", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "operation failed", entry["msg"])
	assert.Contains(t, entry, "error")
}

func TestLogger_SetJSON_Toggle(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.Info("json")
	lg.SetJSON(false)
	lg.Info("pretty")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, json.Valid([]byte(lines[0])))
	assert.Equal(t, "pretty", lines[1])
}

func TestLogger_SetLevel_AppliesToJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Debug("hidden")
	assert.Empty(t, buf.String())

	lg.SetLevel(slog.LevelDebug)
	lg.Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
