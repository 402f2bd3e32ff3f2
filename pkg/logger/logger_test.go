package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// Keep this first in the file: the Init tests below replace the package
// logger for the rest of the run.
func TestGet_BeforeInit(t *testing.T) {
	log := Get()
	require.NotNil(t, log)
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel), "uninitialized logger stays silent")
	assert.NoError(t, Sync())
}

func TestInit_SetsLevel(t *testing.T) {
	require.NoError(t, Init("warn", "production"))

	core := Get().Core()
	assert.True(t, core.Enabled(zapcore.WarnLevel))
	assert.False(t, core.Enabled(zapcore.InfoLevel))
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init("verbose", "production"))

	core := Get().Core()
	assert.True(t, core.Enabled(zapcore.InfoLevel))
	assert.False(t, core.Enabled(zapcore.DebugLevel))
}

func TestInit_Development(t *testing.T) {
	require.NoError(t, Init("debug", "development"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
}
