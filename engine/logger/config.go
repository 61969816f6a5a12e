package logger

// LoggerConfig defines logging configuration
type LoggerConfig struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // json or console
	EnableSampling   bool   `yaml:"enable_sampling"`
	SampleInitial    int    `yaml:"sample_initial"`
	SampleThereafter int    `yaml:"sample_thereafter"`
	Development      bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used by packaged builds.
// Sampling is on so a long-running showcase does not flood the log with
// per-gesture debug lines.
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Level:            "info",
		Format:           "json",
		EnableSampling:   true,
		SampleInitial:    100,
		SampleThereafter: 1000,
		Development:      false,
	}
}

// DevelopmentConfig returns development configuration
func DevelopmentConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
