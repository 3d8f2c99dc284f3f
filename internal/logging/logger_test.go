package logging

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty"))
}

func TestSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	require.NoError(t, Initialize("", ""))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepline.log")
	require.NoError(t, Initialize("info", path))
	t.Cleanup(func() { SetLogger(nil) })

	Info("hello", zap.String("k", "v"))
	Debug("hidden")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), "hidden")
}

func TestDomainHelpers(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogTransition(0.5, 2, []int{0, 1})
	LogReload("a.yaml", 3, nil)
	LogReload("a.yaml", 0, errors.New("bad yaml"))
	LogPlan(3, 1, "horizontal", true)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "Position changed", entries[0].Message)
	assert.Equal(t, 2.0, entries[0].ContextMap()["to"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "Layout planned", entries[3].Message)
}
