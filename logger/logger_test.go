package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	Debug("hidden")
	Info("session created", zap.String("session", "s-1"))
	Warn("price table entry missing", zap.String("entry", "package 1600"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	require.Equal(t, "session created", entries[0].Message)
	require.Equal(t, "s-1", entries[0].ContextMap()["session"])
	require.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestInitFallsBackToInfo(t *testing.T) {
	defer SetLogger(zap.NewNop())
	require.NoError(t, Init("verbose"))
	require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	require.False(t, log.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("debug"))
	require.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
