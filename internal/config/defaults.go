package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultEnv                = "local"
	DefaultDBHost             = "localhost"
	DefaultDBPort             = 5432
	DefaultDBName             = "postgres"
	DefaultDBUser             = "postgres"
	DefaultDBSSLMode          = "disable"
	DefaultLogLevel           = "warn"
	DefaultLogFormat          = "console"
	DefaultSlowQueryThreshold = 200 * time.Millisecond
)

func (c *Config) applyDefaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = DefaultEnv
	}

	if c.Database.Host == "" {
		c.Database.Host = DefaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.Name == "" {
		c.Database.Name = DefaultDBName
	}
	if c.Database.User == "" {
		c.Database.User = DefaultDBUser
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = DefaultLogLevel
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = DefaultLogFormat
	}
	if c.Observability.Logging.SlowQueryThreshold == 0 {
		c.Observability.Logging.SlowQueryThreshold = DefaultSlowQueryThreshold
	}

	// Service name is fixed; environment always follows primary.env.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
}
