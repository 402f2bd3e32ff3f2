package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickerlab/indicator-engine/pkg/indicator"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Engine.Workers)
	assert.Equal(t, 256, cfg.Engine.QueueSize)
	assert.Len(t, cfg.Engine.Indicators, 11)
	assert.Equal(t, "SMA_20", cfg.Engine.Indicators[0].String())
	assert.Equal(t, "VOLMA_5", cfg.Engine.Indicators[10].String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("ENGINE_WORKER_COUNT", "8")
	t.Setenv("ENGINE_QUEUE_SIZE", "1024")
	t.Setenv("ENGINE_INDICATORS", "SMA:5,RSI:7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Engine.Workers)
	assert.Equal(t, 1024, cfg.Engine.QueueSize)
	require.Len(t, cfg.Engine.Indicators, 2)
	assert.Equal(t, indicator.KindSMA, cfg.Engine.Indicators[0].Kind)
	assert.Equal(t, 5, cfg.Engine.Indicators[0].Period)
	assert.Equal(t, indicator.KindRSI, cfg.Engine.Indicators[1].Kind)
	assert.Equal(t, 7, cfg.Engine.Indicators[1].Period)
}

func TestLoad_NonNumericEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("ENGINE_WORKER_COUNT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Engine.Workers)
}

func TestLoad_RejectsBadIndicatorSpec(t *testing.T) {
	t.Setenv("ENGINE_INDICATORS", "SMA:20,BOGUS:1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENGINE_INDICATORS")
}

func TestLoad_RejectsDuplicateIndicators(t *testing.T) {
	t.Setenv("ENGINE_INDICATORS", "SMA:20,SMA:20")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMA_20")
}

func TestParseIndicators_SkipsEmptyEntries(t *testing.T) {
	specs, err := ParseIndicators("SMA:3, ,EMA:5,")
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "SMA_3", specs[0].String())
	assert.Equal(t, "EMA_5", specs[1].String())
}

func TestParseIndicators_CollectsAllErrors(t *testing.T) {
	_, err := ParseIndicators("SMA:zero,RSI:1:2,EMA:5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMA")
	assert.Contains(t, err.Error(), "RSI")
}

func TestValidate_Bounds(t *testing.T) {
	specs, err := ParseIndicators("SMA:3")
	require.NoError(t, err)

	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "zero workers",
			cfg:  Config{Engine: EngineConfig{Workers: 0, QueueSize: 1, Indicators: specs}},
		},
		{
			name: "zero queue",
			cfg:  Config{Engine: EngineConfig{Workers: 1, QueueSize: 0, Indicators: specs}},
		},
		{
			name: "no indicators",
			cfg:  Config{Engine: EngineConfig{Workers: 1, QueueSize: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}
