package observability

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rxdeskhq/pharmaclient/internal/config"
)

func TestNewLoggerBasic(t *testing.T) {
	logger := NewLogger(config.LoggerConfig{Level: "debug", Format: "console"})
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogger(config.LoggerConfig{Level: "verbose-ish", Format: "json"})
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLoggerWithFileCore(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pharmactl.log")
	logger := NewLogger(config.LoggerConfig{
		Level:   "info",
		Format:  "json",
		LogFile: logFile,
		MaxSize: 1,
	})
	require.NotNil(t, logger)

	logger.Info("session restored", zap.String("user", "ops"))
	_ = logger.Sync()

	assert.FileExists(t, logFile)
}
