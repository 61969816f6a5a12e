package logger

import (
	"os"
	"strings"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvMode   = "OXY_ENV"
	EnvLevel  = "OXY_LOG_LEVEL"
	EnvFormat = "OXY_LOG_FORMAT"
)

// ApplyEnv overlays environment overrides on top of cfg.
// OXY_ENV=development swaps in DevelopmentConfig before the level and
// format overrides are applied.
//
// Parameters:
//   - cfg: the base configuration
//
// Returns:
//   - LoggerConfig: the configuration with overrides applied
func ApplyEnv(cfg LoggerConfig) LoggerConfig {
	if strings.EqualFold(os.Getenv(EnvMode), "development") {
		cfg = DevelopmentConfig()
	}
	if level := os.Getenv(EnvLevel); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv(EnvFormat); format != "" {
		cfg.Format = format
	}
	return cfg
}

// NewLoggerWithComponent creates a logger with a component field pre-set.
//
// Parameters:
//   - cfg: logger configuration
//   - component: value for the "component" field
//
// Returns:
//   - Logger: the configured logger
//   - error: error if the zap logger cannot be built
func NewLoggerWithComponent(cfg LoggerConfig, component string) (Logger, error) {
	l, err := NewZapLogger(cfg)
	if err != nil {
		return nil, err
	}
	return l.With(F("component", component)), nil
}
