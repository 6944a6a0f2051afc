package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirshahid/contactManager-server/internal/config"
	"github.com/yasirshahid/contactManager-server/internal/platform/logger"
)

func TestSetupWithWriter_RespectsLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	l := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn"}, &buf)

	l.Info("hidden")
	l.Warn("visible", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "only the warn record should be written")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "value", entry["key"])

	// The configured logger becomes the package default.
	buf.Reset()
	slog.Error("through default")
	assert.Contains(t, buf.String(), "through default")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}

	for name, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(name), "level %q", name)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	scoped := slog.New(slog.NewJSONHandler(&buf, nil)).With("trace_id", "abc")
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	t.Run("returns stored logger", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, fallback))
		assert.Same(t, scoped, logger.FromContext(ctx))
	})

	t.Run("falls back when absent", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
		assert.NotNil(t, logger.FromContext(context.Background()))
	})
}
