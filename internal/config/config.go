package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/tickerlab/indicator-engine/pkg/indicator"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	// Engine
	Engine EngineConfig
}

// EngineConfig holds indicator engine configuration
type EngineConfig struct {
	Workers    int
	QueueSize  int
	Indicators []indicator.Spec
}

// DefaultIndicators is the indicator set built when ENGINE_INDICATORS is unset.
const DefaultIndicators = "SMA:20,EMA:12,EMA:26,RSI:14,MACD:12:26:9,KDJ:9:3:3,ATR:14,BOLL:20:2,OBV,SAR:0.02:0.2,VOLMA:5"

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory or parent directories
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	specs, err := ParseIndicators(getEnv("ENGINE_INDICATORS", DefaultIndicators))
	if err != nil {
		return nil, fmt.Errorf("parse ENGINE_INDICATORS: %w", err)
	}

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Engine: EngineConfig{
			Workers:    getEnvAsInt("ENGINE_WORKER_COUNT", 4),
			QueueSize:  getEnvAsInt("ENGINE_QUEUE_SIZE", 256),
			Indicators: specs,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Engine.Workers < 1 {
		return fmt.Errorf("ENGINE_WORKER_COUNT must be at least 1")
	}
	if c.Engine.QueueSize < 1 {
		return fmt.Errorf("ENGINE_QUEUE_SIZE must be at least 1")
	}
	if len(c.Engine.Indicators) == 0 {
		return fmt.Errorf("ENGINE_INDICATORS must contain at least one indicator")
	}
	// Building a throwaway set surfaces duplicate names and bad parameters up front.
	if _, err := indicator.BuildSet(c.Engine.Indicators); err != nil {
		return fmt.Errorf("ENGINE_INDICATORS: %w", err)
	}
	return nil
}

// ParseIndicators parses a comma-separated list of indicator specs,
// e.g. "SMA:20,RSI:14,MACD:12:26:9". Empty entries are skipped.
func ParseIndicators(value string) ([]indicator.Spec, error) {
	parts := strings.Split(value, ",")
	specs := make([]indicator.Spec, 0, len(parts))
	var errs error
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		spec, err := indicator.ParseSpec(trimmed)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		specs = append(specs, spec)
	}
	if errs != nil {
		return nil, errs
	}
	return specs, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
