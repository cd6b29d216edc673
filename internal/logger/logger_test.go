package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		" Info ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}

// TestFromContext_FallsBackToGlobal checks that a bare context yields the global logger.
func TestFromContext_FallsBackToGlobal(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestWithKV_AttachesFields ensures loggers derived through the context keep their fields.
func TestWithKV_AttachesFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())
	ctx = WithName(ctx, "demo")
	ctx = WithKV(ctx, "device", "Living Room Light")

	InfoKV(ctx, "Section started", "section", "observer")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "demo", entries[0].LoggerName)
	require.Equal(t, "Living Room Light", entries[0].ContextMap()["device"])
	require.Equal(t, "observer", entries[0].ContextMap()["section"])
}

// TestWithLevel_PinsThreshold checks that WithLevel overrides the wrapped core's level.
func TestWithLevel_PinsThreshold(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	l := zap.New(core, WithLevel(zapcore.DebugLevel)).Sugar()

	l.Debug("visible")
	require.Equal(t, 1, logs.Len())
}
