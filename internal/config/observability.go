package config

import (
	"fmt"
	"time"
)

// ServiceName identifies this program in log output.
const ServiceName = "products"

// ObservabilityConfig groups the settings that control what the tool
// reports about itself while it runs.
type ObservabilityConfig struct {
	// ServiceName is always overwritten with ServiceName.
	ServiceName string `koanf:"service_name"`

	// Environment mirrors primary.env.
	Environment string `koanf:"environment"`

	Logging LoggingConfig `koanf:"logging"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format is "console" (human readable, stderr) or "json".
	Format string `koanf:"format"`

	// SlowQueryThreshold is a duration beyond which a statement is logged
	// at warn level. Parsed from strings like "100ms" or "1s".
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// DefaultObservabilityConfig provides the defaults used when no
// observability variables are set.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: ServiceName,
		Environment: DefaultEnv,
		Logging: LoggingConfig{
			Level:              DefaultLogLevel,
			Format:             DefaultLogFormat,
			SlowQueryThreshold: DefaultSlowQueryThreshold,
		},
	}
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Validate applies rules that go beyond struct tags.
func (c *ObservabilityConfig) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
	}

	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be one of: console, json)", c.Logging.Format)
	}

	if c.Logging.SlowQueryThreshold < 0 {
		return fmt.Errorf("logging slow_query_threshold must be non-negative")
	}

	return nil
}
