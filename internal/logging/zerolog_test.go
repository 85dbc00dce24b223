package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), "line: %s", line)
		out = append(out, m)
	}
	return out
}

func TestZerologLogger_LevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologLogger(Options{Level: "debug", Output: &buf})
	require.NoError(t, err)

	ctx := context.Background()
	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "d", true)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "dbg", lines[0]["message"])
	assert.EqualValues(t, 1, lines[0]["a"])

	assert.Equal(t, "info", lines[1]["level"])
	assert.Equal(t, "two", lines[1]["b"])

	assert.Equal(t, "warn", lines[2]["level"])

	assert.Equal(t, "error", lines[3]["level"])
	assert.Equal(t, true, lines[3]["d"])
}

func TestZerologLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologLogger(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
}

func TestZerologLogger_With(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologLogger(Options{Output: &buf})
	require.NoError(t, err)

	log.With("module", "grpc_server").Info(context.Background(), "hello", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "grpc_server", lines[0]["module"])
	assert.Equal(t, "v", lines[0]["k"])
}

func TestZerologLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewZerologLogger(Options{Format: FormatConsole, Output: &buf})
	require.NoError(t, err)

	log.Info(context.Background(), "pretty", "k", "v")
	out := buf.String()
	assert.Contains(t, out, "pretty")
	assert.Contains(t, out, "k=v")
}

func TestNew_Backends(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		want    any
		wantErr bool
	}{
		{name: "default is zerolog", opts: Options{}, want: &ZerologLogger{}},
		{name: "zerolog", opts: Options{Backend: "zerolog"}, want: &ZerologLogger{}},
		{name: "slog", opts: Options{Backend: "SLOG"}, want: &SlogLogger{}},
		{name: "unknown backend", opts: Options{Backend: "logrus"}, wantErr: true},
		{name: "bad zerolog level", opts: Options{Level: "loud"}, wantErr: true},
		{name: "bad slog level", opts: Options{Backend: "slog", Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.opts.Output = &buf
			l, err := New(tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, l)
		})
	}
}

func TestSlogLoggerFromOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewSlogLoggerFromOptions(Options{Level: "info", Output: &buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "shown", "k", "v")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, "v", lines[0]["k"])
}
