package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"uptime/internal/pkg/config"
)

func TestInitDisabledIsNop(t *testing.T) {
	cfg := config.GetDefaultConfig()
	require.NoError(t, Init(cfg))

	assert.False(t, Log.Core().Enabled(zapcore.ErrorLevel))
	assert.NotPanics(t, func() { Error("ignored", String("k", "v")) })
}

func TestInitWritesRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := config.GetDefaultConfig()
	cfg.Logs.Enabled = true
	cfg.Logs.Level = "debug"
	cfg.Logs.Format = "json"
	cfg.Logs.Stderr = false
	cfg.Logs.FilePath = dir

	require.NoError(t, Init(cfg))
	t.Cleanup(func() { _ = Init(config.GetDefaultConfig()) })

	Info("System uptime queried", Uint64("seconds", 3661))
	require.NoError(t, Sync())

	data, err := os.ReadFile(filepath.Join(dir, "uptime.log"))
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.Contains(out, `"message":"System uptime queried"`), out)
	assert.True(t, strings.Contains(out, `"seconds":3661`), out)
	assert.True(t, strings.Contains(out, `"app":"uptime"`), out)
}

func TestInitInvalidLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Logs.Enabled = true
	cfg.Logs.Level = "verbose"

	assert.Error(t, Init(cfg))
}

func TestGetLogLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}

	for in, want := range tests {
		got, err := getLogLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
